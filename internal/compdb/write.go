package compdb

import (
	"encoding/json"

	"github.com/compdb-dev/compdb/internal/fileutil"
)

// DatabaseFile is the fixed artifact name consumed by compiler-aware tooling.
const DatabaseFile = "compile_commands.json"

// Encode serializes entries as an indented JSON array with a trailing
// newline. An empty entry list still encodes as [].
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write overwrites the database artifact at path in one pass, reporting
// whether the content actually changed. Reruns over an unchanged graph
// produce byte-identical artifacts.
func Write(path string, entries []Entry) (bool, error) {
	data, err := Encode(entries)
	if err != nil {
		return false, err
	}
	return fileutil.WriteIfChangedTracked(path, data)
}
