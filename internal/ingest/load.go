package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/fieldcarbon/internal/logging"
)

// Format is an input document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the decoder by extension; anything other than
// .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode reads a document. Unknown fields are rejected in both formats.
func Decode(r io.Reader, format Format) (*Document, error) {
	return DecodeWithContext(context.Background(), r, format)
}

// DecodeWithContext is Decode with the logger carried in ctx.
func DecodeWithContext(ctx context.Context, r io.Reader, format Format) (*Document, error) {
	log := logging.FromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "decode").
		Str("format", string(format)).
		Int("data_size_bytes", len(data)).
		Msg("decoding analysis document")

	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		if err == io.EOF {
			err = nil
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Msg("failed to decode analysis document")
		return nil, fmt.Errorf("parsing %s document: %w", format, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("analysis_count", len(doc.Records)).
		Msg("document decoded")
	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	return LoadFileWithContext(context.Background(), path)
}

// LoadFileWithContext is LoadFile with the logger carried in ctx.
func LoadFileWithContext(ctx context.Context, path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Str("document_path", path).
			Msg("failed to open analysis document")
		return nil, fmt.Errorf("opening analysis document: %w", err)
	}
	defer f.Close()

	doc, err := DecodeWithContext(ctx, f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
