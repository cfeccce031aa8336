// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Recognised values for the Mapping field.
const (
	MappingAuto    = "AUTO"
	MappingLoROM   = "LOROM"
	MappingHiROM   = "HIROM"
	MappingExHiROM = "EXHIROM"
)

// Sentinal errors returned by Load().
var (
	ErrUnexpectedHash = errors.New("cartridgeloader: unexpected hash value")
	ErrScheme         = errors.New("cartridgeloader: unsupported URL scheme")
	ErrMapping        = errors.New("cartridgeloader: unknown mapping")
)

// Loader specifies the cartridge data to be attached to the console.
type Loader struct {
	// filename of cartridge to load. can be a URL with the http or https
	// scheme
	Filename string

	// the mapping of the cartridge. empty string or "AUTO" indicates that the
	// cartridge header should be used
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, mapping string) (Loader, error) {
	cl := Loader{
		Filename: filename,
		Mapping:  MappingAuto,
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	switch mapping {
	case "", MappingAuto:
	case MappingLoROM, MappingHiROM, MappingExHiROM:
		cl.Mapping = mapping
	default:
		return cl, fmt.Errorf("%w: %s", ErrMapping, mapping)
	}

	return cl, nil
}

// NewLoaderFromData creates a Loader with the data already loaded. Useful
// for testing.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Mapping:  MappingAuto,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}
}

// ShortName returns the filename of the cartridge without the path or the
// extension.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil && url.Scheme != "" {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("cartridgeloader: %s", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		return fmt.Errorf("%w: %s", ErrScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return ErrUnexpectedHash
	}

	cl.Hash = hash

	return nil
}
