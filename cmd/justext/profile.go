package main

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/justext"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads classifier thresholds from a YAML file. Keys missing
// from the file keep their default value; unknown keys are an error.
func LoadProfile(path string) (justext.ClassifierProperties, error) {
	props := justext.DefaultClassifierProperties()

	f, err := os.Open(path)
	if err != nil {
		return props, justext.WrapError(justext.EINVALID, err, "failed to open profile %q", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&props); err != nil && !errors.Is(err, io.EOF) {
		return props, justext.WrapError(justext.EINVALID, err, "failed to parse profile %q", path)
	}
	return props, nil
}

// Properties merges defaults, the optional profile and explicit flags, in
// that order, and validates the result.
func (f ClassifierFlags) Properties() (justext.ClassifierProperties, error) {
	props := justext.DefaultClassifierProperties()
	if f.Profile != "" {
		var err error
		if props, err = LoadProfile(f.Profile); err != nil {
			return props, err
		}
	}

	var opts []justext.PropertiesOption
	if f.LengthLow >= 0 {
		opts = append(opts, justext.WithLengthLow(f.LengthLow))
	}
	if f.LengthHigh >= 0 {
		opts = append(opts, justext.WithLengthHigh(f.LengthHigh))
	}
	if f.StopWordsLow >= 0 {
		opts = append(opts, justext.WithStopWordsLow(f.StopWordsLow))
	}
	if f.StopWordsHigh >= 0 {
		opts = append(opts, justext.WithStopWordsHigh(f.StopWordsHigh))
	}
	if f.MaxLinkDensity >= 0 {
		opts = append(opts, justext.WithMaxLinkDensity(f.MaxLinkDensity))
	}
	if f.MaxHeadingDistance >= 0 {
		opts = append(opts, justext.WithMaxHeadingDistance(f.MaxHeadingDistance))
	}
	if f.NoHeadings {
		opts = append(opts, justext.WithNoHeadings(true))
	}

	for _, opt := range opts {
		opt(&props)
	}
	return props, props.Validate()
}
