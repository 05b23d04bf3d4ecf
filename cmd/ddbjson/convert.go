package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/olpa/ddbjson"
)

// convert runs one full conversion over the input stream. The first line
// decides the framing: a .jsonl input file, or a first line that is a
// complete JSON value by itself, selects line-oriented mode.
func convert(r io.Reader, w io.Writer, opts options) error {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	lineMode := strings.HasSuffix(opts.input, ".jsonl") || ddbjson.LooksLikeSingleJSONValue(first)
	slog.Debug("framing detected", "lineMode", lineMode)

	bw := bufio.NewWriter(w)

	if lineMode {
		err = convertLines(first, br, bw, opts)
	} else {
		err = convertDocument(first, br, bw, opts)
	}

	if err != nil {
		return err
	}

	return bw.Flush()
}

// convertLines processes JSON Lines input: one document per line, blank
// lines skipped, line numbers counted from the top of the stream.
func convertLines(first string, br *bufio.Reader, w io.Writer, opts options) error {
	line, lineNum := first, 1

	for {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			doc, err := parseValue(trimmed)
			if err != nil {
				return fmt.Errorf("invalid JSON on line %d: %w", lineNum, err)
			}

			if err := convertUnit(doc, w, opts); err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
		}

		next, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) && next == "" {
			slog.Debug("finished line-oriented input", "lines", lineNum)
			return nil
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		line = next
		lineNum++
	}
}

// convertDocument processes the whole stream as a single JSON document.
func convertDocument(first string, br *bufio.Reader, w io.Writer, opts options) error {
	rest, err := io.ReadAll(br)
	if err != nil {
		return err
	}

	doc, err := parseValue(first + string(rest))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return convertUnit(doc, w, opts)
}

func convertUnit(doc any, w io.Writer, opts options) error {
	var (
		result any
		err    error
	)

	if opts.mode == modeFromDDB {
		result, err = ddbjson.FromDynamo(doc)
	} else {
		result, err = ddbjson.ToDynamo(doc, !opts.withoutItem)
	}

	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if opts.pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(result)
}

// parseValue parses text as exactly one JSON value. Number literals stay
// json.Number so the codec sees them verbatim.
func parseValue(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}

	return v, nil
}
