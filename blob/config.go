package blob

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/frontcode/endian"
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
)

// Config is the serializable form of the encoder options.
//
// Example YAML:
//
//	encoding: front
//	compression: zstd
//	byte_order: little
//	rune_aligned: false
type Config struct {
	Encoding    format.EncodingType    `yaml:"encoding"`
	Compression format.CompressionType `yaml:"compression"`
	ByteOrder   string                 `yaml:"byte_order"`
	RuneAligned bool                   `yaml:"rune_aligned"`
}

// DefaultConfig returns the configuration matching NewEncoder without options.
func DefaultConfig() Config {
	return Config{
		Encoding:    format.TypeFront,
		Compression: format.CompressionZstd,
		ByteOrder:   "little",
	}
}

// ParseConfig parses a YAML document into a Config. Keys absent from the document keep
// their DefaultConfig values; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig reads a YAML document from r into a Config.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every field names a supported value.
func (c Config) Validate() error {
	if !c.Encoding.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, c.Encoding)
	}
	if !c.Compression.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, c.Compression)
	}
	if _, err := endian.ParseEngine(c.ByteOrder); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnsupportedByteOrder, err)
	}

	return nil
}

// Options converts the configuration into encoder options.
func (c Config) Options() ([]EncoderOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []EncoderOption{
		WithEncoding(c.Encoding),
		WithCompression(c.Compression),
		WithRuneAlignedPrefixes(c.RuneAligned),
	}

	engine, _ := endian.ParseEngine(c.ByteOrder)
	if endian.IsBigEndian(engine) {
		opts = append(opts, WithBigEndian())
	} else {
		opts = append(opts, WithLittleEndian())
	}

	return opts, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return yaml.Marshal(c)
}

// NewEncoderFromConfig creates an Encoder from a Config.
func NewEncoderFromConfig(cfg Config) (*Encoder, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return NewEncoder(opts...)
}
