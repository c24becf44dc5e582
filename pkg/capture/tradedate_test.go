package capture

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTradeDateFromCapture(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    time.Time
		wantErr error
	}{
		{"no extension", "asdf", time.Time{}, ErrWrongExtension},
		{"wrong extension", "asdf.txt", time.Time{}, ErrWrongExtension},
		{"extension only", ".pcap", time.Time{}, ErrNoStem},
		{"stem too short", "asdf.pcap", time.Time{}, ErrInvalidDate},
		{"not a leap year", "20180229.pcap", time.Time{}, ErrInvalidDate},
		{"month out of range", "20181329.pcap", time.Time{}, ErrInvalidDate},
		{"plain date", "20180228.pcap", date(2018, time.February, 28), nil},
		{"feed file name", "20190703_IEXTP1_DEEP1.0.pcap", date(2019, time.July, 3), nil},
		{"with directories", "../../data/iex/20190703_IEXTP1_DEEP1.0.pcap", date(2019, time.July, 3), nil},
		{"gzip wrapped", "20190703_IEXTP1_DEEP1.0.pcap.gz", date(2019, time.July, 3), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TradeDateFromCapture(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TradeDateFromCapture(%q) error = %v; want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TradeDateFromCapture(%q): %v", tt.path, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TradeDateFromCapture(%q) = %v; want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDateFromStem(t *testing.T) {
	tests := []struct {
		name    string
		stem    string
		want    time.Time
		wantErr error
	}{
		{"not a date", "asdf", time.Time{}, ErrInvalidDate},
		{"month out of range", "20181329", time.Time{}, ErrInvalidDate},
		{"not a leap year", "20180229", time.Time{}, ErrInvalidDate},
		{"valid", "20180228", date(2018, time.February, 28), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateFromStem(tt.stem)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DateFromStem(%q) error = %v; want %v", tt.stem, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateFromStem(%q): %v", tt.stem, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("DateFromStem(%q) = %v; want %v", tt.stem, got, tt.want)
			}
		})
	}
}
