package steam

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// VDFMap is a parsed VDF key-value structure (nested maps and string values).
type VDFMap map[string]interface{}

// Child returns the nested map under key, or nil.
func (m VDFMap) Child(key string) VDFMap {
	child, _ := m[key].(VDFMap)
	return child
}

// String returns the string value under key, or "".
func (m VDFMap) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// ParseVDF reads Valve Key-Value format from r and returns the root map.
func ParseVDF(r io.Reader) (VDFMap, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanVDFTokens)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vdf: %w", err)
	}
	root := make(VDFMap)
	pos := 0
	for pos < len(tokens) {
		key := tokens[pos]
		pos++
		if pos >= len(tokens) {
			return nil, fmt.Errorf("vdf: unexpected end after key %q", key)
		}
		if tokens[pos] == "{" {
			pos++
			inner, err := parseVDFObject(tokens, &pos)
			if err != nil {
				return nil, err
			}
			root[key] = inner
		} else {
			root[key] = tokens[pos]
			pos++
		}
	}
	return root, nil
}

// parseVDFObject parses key-value pairs until "}", returns the map and advances pos past "}".
func parseVDFObject(tokens []string, pos *int) (VDFMap, error) {
	result := make(VDFMap)
	for *pos < len(tokens) && tokens[*pos] != "}" {
		key := tokens[*pos]
		*pos++
		if *pos >= len(tokens) {
			return nil, fmt.Errorf("vdf: unexpected end after key %q", key)
		}
		if tokens[*pos] == "{" {
			*pos++
			inner, err := parseVDFObject(tokens, pos)
			if err != nil {
				return nil, err
			}
			result[key] = inner
		} else {
			result[key] = tokens[*pos]
			*pos++
		}
	}
	if *pos < len(tokens) && tokens[*pos] == "}" {
		*pos++
	}
	return result, nil
}

// scanVDFTokens splits on quoted strings and single characters { }.
func scanVDFTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		if atEOF {
			return start, nil, nil
		}
		return 0, nil, nil
	}
	data = data[start:]

	if data[0] == '"' {
		for i := 1; i < len(data); i++ {
			if data[i] == '\\' && i+1 < len(data) {
				i++
				continue
			}
			if data[i] == '"' {
				return start + i + 1, data[1:i], nil
			}
		}
		if atEOF {
			return len(data) + start, nil, fmt.Errorf("vdf: unclosed quote")
		}
		return 0, nil, nil
	}
	if data[0] == '{' || data[0] == '}' {
		return start + 1, data[0:1], nil
	}
	i := 0
	for i < len(data) && !unicode.IsSpace(rune(data[i])) && data[i] != '"' {
		i++
	}
	if i > 0 {
		return start + i, data[:i], nil
	}
	if atEOF {
		return start + 1, data[0:1], nil
	}
	return 0, nil, nil
}
