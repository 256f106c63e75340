/*
 * TULIP4041 - Configuration file parser
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package configparser loads the startup configuration. Each line is a
// registered keyword followed by options; handlers register themselves
// before LoadConfigFile runs.
//
/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line>   ::= <keyword> *(<whitespace> <option>)
 * <option> ::= <name> | <name> '=' <value>
 * <value>  ::= <string> | '"' *(<letter> | <whitespace>) '"' | <number>
 */
package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option is one name or name=value element of a statement.
type Option struct {
	Name     string // name of option
	EqualOpt string // string after the =, if any
	Value    uint32 // EqualOpt parsed as a number, when it is one
	IsNumber bool
}

type handler struct {
	create func([]Option) error
}

var keywords = map[string]handler{}

var lineNumber int

// Register should be called before LoadConfigFile, from init
// functions or startup code.
func Register(keyword string, fn func([]Option) error) {
	keywords[strings.ToUpper(keyword)] = handler{create: fn}
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		lineNumber++
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if perr := parseLine(line); perr != nil {
			return fmt.Errorf("line %d: %w", lineNumber, perr)
		}
	}
	return nil
}

// Parse one line from the file.
func parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields, err := splitQuoted(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	keyword := strings.ToUpper(fields[0])
	h, ok := keywords[keyword]
	if !ok {
		return errors.New("unknown keyword: " + fields[0])
	}

	options := make([]Option, 0, len(fields)-1)
	for _, f := range fields[1:] {
		opt := Option{Name: f}
		if eq := strings.IndexByte(f, '='); eq >= 0 {
			opt.Name = f[:eq]
			opt.EqualOpt = f[eq+1:]
			if v, err := strconv.ParseUint(strings.TrimPrefix(opt.EqualOpt, "0x"), baseOf(opt.EqualOpt), 32); err == nil {
				opt.Value = uint32(v)
				opt.IsNumber = true
			}
		}
		options = append(options, opt)
	}
	return h.create(options)
}

func baseOf(s string) int {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return 16
	}
	return 10
}

// splitQuoted splits on whitespace, honouring double quotes.
func splitQuoted(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
