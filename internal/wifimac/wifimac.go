// Package wifimac reads the WiFi MAC address from the persisted calibration file.
//
// The file is written at the factory and looks like:
//
//	wifiaddr:0x00 0x1a 0x2b 0x3c 0x4d 0x5e
package wifimac

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/smazurov/tulipd/internal/logging"
)

// DefaultPath is where the calibration partition keeps the address.
const DefaultPath = "/persist/wifimac.dat"

const (
	prefix = "wifiaddr:"

	// maxRead covers the prefix and six "0xNN " groups.
	maxRead = len(prefix) + 5*6
)

// ErrMalformed is returned when the file does not hold six parsable bytes.
var ErrMalformed = errors.New("malformed wifimac data")

// Parse extracts the address from calibration file content. Only the first
// 39 bytes are considered and anything after the sixth byte is ignored.
func Parse(data []byte) (net.HardwareAddr, error) {
	if len(data) > maxRead {
		data = data[:maxRead]
	}

	s, ok := strings.CutPrefix(string(data), prefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrMalformed, prefix)
	}

	addr := make(net.HardwareAddr, 6)
	for i := range addr {
		if i > 0 {
			s = strings.TrimLeft(s, " \t\r\n\v\f")
		}

		rest, ok := strings.CutPrefix(s, "0x")
		if !ok {
			return nil, fmt.Errorf("%w: byte %d has no 0x prefix", ErrMalformed, i+1)
		}

		n := hexDigits(rest, 2)
		if n == 0 {
			return nil, fmt.Errorf("%w: byte %d is not hex", ErrMalformed, i+1)
		}

		v, err := strconv.ParseUint(rest[:n], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: byte %d: %v", ErrMalformed, i+1, err)
		}
		addr[i] = byte(v)
		s = rest[n:]
	}

	return addr, nil
}

// Read loads and parses the calibration file at path.
func Read(path string) (net.HardwareAddr, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wifimac file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxRead)))
	if err != nil {
		return nil, fmt.Errorf("failed to read wifimac file: %w", err)
	}

	addr, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logging.GetLogger("wifimac").Info("Found MAC address", "path", path, "mac", addr.String())
	return addr, nil
}

// hexDigits counts leading hex digits of s, up to limit.
func hexDigits(s string, limit int) int {
	n := 0
	for n < len(s) && n < limit {
		c := s[n]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			break
		}
		n++
	}
	return n
}
