package trajectory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/hiwinstudio/urdfkit/utils"
)

// ReadJSONL reads newline-delimited trajectory records. Blank lines are
// skipped. A record normally carries joint1..joint6 keys; a positions array
// (positions, position or J) is accepted as a fallback.
func ReadJSONL(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := parseRecordLine([]byte(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read JSONL data")
	}
	return records, nil
}

// ReadJSONLFile reads a .jsonl trajectory file.
func ReadJSONLFile(path string) ([]Record, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read trajectory file")
	}
	return ReadJSONL(bytes.NewReader(data))
}

func parseRecordLine(line []byte) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return Record{}, errors.Wrap(err, "malformed JSONL record")
	}

	keys := []string{"joint1", "joint2", "joint3", "joint4", "joint5", "joint6"}
	allPresent := true
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			allPresent = false
			break
		}
	}
	if allPresent {
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return Record{}, errors.Wrap(err, "malformed joint record")
		}
		return record, nil
	}

	for _, key := range []string{"positions", "position", "J"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var values []float64
		if err := json.Unmarshal(raw, &values); err == nil {
			return RecordFromValues(values), nil
		}
	}
	// an unrecognized record degrades to the zero pose
	return Record{}, nil
}

// MarshalLines renders records as JSONL lines without trailing newlines.
func MarshalLines(records []Record) ([]string, error) {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal trajectory record")
		}
		lines = append(lines, string(data))
	}
	return lines, nil
}

// WriteJSONL writes records to w, one per line with a trailing newline each.
func WriteJSONL(w io.Writer, records []Record) error {
	lines, err := MarshalLines(records)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrap(err, "failed to write JSONL line")
		}
	}
	return nil
}

// WriteJSONLFile writes records to path, creating parent directories.
func WriteJSONLFile(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	//nolint:gosec
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create trajectory file")
	}
	if err := WriteJSONL(file, records); err != nil {
		utils.UncheckedError(file.Close())
		return err
	}
	return file.Close()
}
