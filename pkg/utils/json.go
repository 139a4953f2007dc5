package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var Json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJsonToFile marshals data with indentation and writes it to dst.
func WriteJsonToFile(dst string, data interface{}) error {
	raw, err := Json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed marshal json")
	}
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed write %s", dst)
	}
	return nil
}

// ReadJsonFromFile unmarshals the whole file at src into out.
func ReadJsonFromFile(src string, out interface{}) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, "failed read %s", src)
	}
	return errors.Wrap(Json.Unmarshal(raw, out), "failed unmarshal json")
}
