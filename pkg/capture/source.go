// Package capture supplies packets from an on-disk pcap capture, plain or
// gzip-wrapped, stripped down to each packet's transport payload.
package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/exp/mmap"

	"github.com/peter-kozarec/deeptick/pkg/wire"
)

const (
	pcapExtension = ".pcap"
	gzipExtension = ".gz"

	// Section header block magic of the pcapng format, same bytes read in
	// either endianness. Anything else is treated as a classic pcap.
	ngMagic = 0x0a0d0d0a
)

var (
	ErrWrongExtension = errors.New("wrong capture file extension")
	ErrNoPayload      = errors.New("packet carries no transport payload")
)

// Packet is one captured frame reduced to its protocol payload, the bytes
// after the Ethernet/IP/UDP framing, together with its 0-based ordinal.
type Packet struct {
	Index   uint64
	Payload []byte
}

type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

type Source struct {
	reader  packetReader
	closers []io.Closer
	index   uint64
}

// Open selects the backing reader by file extension: .pcap is mapped into
// memory, .gz streams through a gzip reader. Any other extension, or none,
// is rejected before a byte is read.
func Open(path string) (*Source, error) {
	switch filepath.Ext(path) {
	case pcapExtension:
		return openPcap(path)
	case gzipExtension:
		return openGzip(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrWrongExtension, path)
	}
}

func openPcap(path string) (*Source, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open capture %q: %w", path, err)
	}

	section := io.NewSectionReader(ra, 0, int64(ra.Len()))
	reader, err := newPacketReader(bufio.NewReader(section))
	if err != nil {
		_ = ra.Close()
		return nil, fmt.Errorf("unable to read capture %q: %w", path, err)
	}

	return &Source{reader: reader, closers: []io.Closer{ra}}, nil
}

func openGzip(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open capture %q: %w", path, err)
	}

	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("unable to inflate capture %q: %w", path, err)
	}

	reader, err := newPacketReader(bufio.NewReader(gz))
	if err != nil {
		_ = gz.Close()
		_ = f.Close()
		return nil, fmt.Errorf("unable to read capture %q: %w", path, err)
	}

	return &Source{reader: reader, closers: []io.Closer{gz, f}}, nil
}

// newPacketReader sniffs the capture magic to pick the pcap or pcapng reader.
func newPacketReader(br *bufio.Reader) (packetReader, error) {
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("unable to read capture magic: %w", err)
	}

	if wire.Uint32(magic, 0) == ngMagic {
		reader, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, err
		}
		return reader, nil
	}

	reader, err := pcapgo.NewReader(br)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

// Next returns the next packet in capture order, io.EOF once the capture is
// exhausted. The payload slice is owned by the caller until the following
// Next call.
func (s *Source) Next() (Packet, error) {
	data, _, err := s.reader.ReadPacketData()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Packet{}, io.EOF
		}
		return Packet{}, fmt.Errorf("unable to read packet %d: %w", s.index, err)
	}

	decoded := gopacket.NewPacket(data, s.reader.LinkType(), gopacket.Lazy)
	app := decoded.ApplicationLayer()
	if app == nil {
		return Packet{}, fmt.Errorf("packet %d: %w", s.index, ErrNoPayload)
	}

	packet := Packet{Index: s.index, Payload: app.Payload()}
	s.index++
	return packet, nil
}

func (s *Source) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
