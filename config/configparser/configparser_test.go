/*
 * TULIP4041 - configuration parser test cases.
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

package configparser

import (
	"os"
	"path/filepath"
	"testing"
)

func loadString(t *testing.T, content string) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cfg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return LoadConfigFile(path)
}

func TestKeywordDispatch(t *testing.T) {
	var got []Option
	Register("plug", func(opts []Option) error {
		got = opts
		return nil
	})

	err := loadString(t, "# a comment\n\nplug page=8 bank=2 file=ADVANTAGE\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d options expected 3", len(got))
	}
	if got[0].Name != "page" || got[0].Value != 8 || !got[0].IsNumber {
		t.Errorf("page option parsed as %+v", got[0])
	}
	if got[2].EqualOpt != "ADVANTAGE" {
		t.Errorf("file option parsed as %+v", got[2])
	}
}

func TestHexValues(t *testing.T) {
	var got []Option
	Register("window", func(opts []Option) error {
		got = opts
		return nil
	})
	if err := loadString(t, "window start=0x98 end=0xA1\n"); err != nil {
		t.Fatal(err)
	}
	if got[0].Value != 0x98 || got[1].Value != 0xA1 {
		t.Errorf("hex values parsed as %+v", got)
	}
}

func TestQuotedValues(t *testing.T) {
	var got []Option
	Register("label", func(opts []Option) error {
		got = opts
		return nil
	})
	if err := loadString(t, `label name="HP 41 ROM"`+"\n"); err != nil {
		t.Fatal(err)
	}
	if got[0].EqualOpt != "HP 41 ROM" {
		t.Errorf("quoted value parsed as %q", got[0].EqualOpt)
	}
}

func TestUnknownKeyword(t *testing.T) {
	if err := loadString(t, "nonsense a=1\n"); err == nil {
		t.Error("unknown keyword accepted")
	}
}

func TestCommentsAndBlanks(t *testing.T) {
	if err := loadString(t, "# only comments\n\n   \n"); err != nil {
		t.Errorf("comment only file rejected: %v", err)
	}
}
