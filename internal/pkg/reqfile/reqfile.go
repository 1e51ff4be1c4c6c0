// Package reqfile reads order time requests from JSON or TOML files for the
// command line checker. Both formats decode into the same request DTO the HTTP
// handler binds, with unknown keys rejected.
package reqfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	reqdto "order-time-checker/internal/handler/dto/request"
	"order-time-checker/internal/pkg/errs"

	"github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from the file extension. Anything but .toml is JSON.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

func Load(path string) (reqdto.OrderTimeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return reqdto.OrderTimeRequest{}, errs.Wrap(err, "read request file")
	}
	req, err := Decode(data, FormatOf(path))
	if err != nil {
		return reqdto.OrderTimeRequest{}, errs.Wrap(err, filepath.Base(path))
	}
	return req, nil
}

func Decode(data []byte, format Format) (reqdto.OrderTimeRequest, error) {
	if format == FormatTOML {
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return reqdto.OrderTimeRequest{}, errs.Mark(errs.Wrap(err, "parse toml"), errs.ErrMalformedBody)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return reqdto.OrderTimeRequest{}, errs.Wrap(err, "convert toml")
		}
		data = converted
	}

	var req reqdto.OrderTimeRequest
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return reqdto.OrderTimeRequest{}, errs.Mark(errs.Wrap(err, "decode request"), errs.ErrMalformedBody)
	}
	return req, nil
}
