/*
 * TULIP4041 - settings test cases.
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

package settings

import (
	"errors"
	"testing"
)

// memStore is an in-memory settings store.
type memStore struct {
	value [NumItems]uint16
	saved int
}

func (m *memStore) ReadSettings() ([NumItems]uint16, error) {
	return m.value, nil
}

func (m *memStore) WriteSettings(v [NumItems]uint16) error {
	m.value = v
	m.saved++
	return nil
}

func TestDefaults(t *testing.T) {
	s := New(&memStore{}, nil)
	if s.IsInitialised() {
		t.Error("fresh vector reports initialised")
	}
	s.SetDefault()
	if !s.IsInitialised() {
		t.Error("defaults must install the init magic")
	}
	if s.Get(InitOK) != InitValue {
		t.Errorf("init magic got %04X expected %04X", s.Get(InitOK), InitValue)
	}
	if !s.GetBool(TracerEnabled) {
		t.Error("tracer not enabled by default")
	}
	if s.GetBool(PrtPower) {
		t.Error("printer power on by default")
	}
	if s.Get(XMemPages) != 0 {
		t.Error("xmem modules not zero by default")
	}
}

// retrieve; save; retrieve returns the same vector.
func TestSaveRetrieveIdempotent(t *testing.T) {
	store := &memStore{}
	s := New(store, nil)
	s.SetDefault()
	s.Set(XMemPages, 2)
	s.Set(PrtMode, 2)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	if err := s.Retrieve(); err != nil {
		t.Fatal(err)
	}
	first := s.Vector()

	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if err := s.Retrieve(); err != nil {
		t.Fatal(err)
	}
	if s.Vector() != first {
		t.Error("retrieve; save; retrieve changed the vector")
	}
}

// Persistent access is refused while the calculator runs.
func TestGuard(t *testing.T) {
	running := true
	s := New(&memStore{}, func() bool { return !running })
	if err := s.Save(); !errors.Is(err, ErrCalcRunning) {
		t.Errorf("save while running got %v expected ErrCalcRunning", err)
	}
	if err := s.Retrieve(); !errors.Is(err, ErrCalcRunning) {
		t.Errorf("retrieve while running got %v expected ErrCalcRunning", err)
	}
	running = false
	if err := s.Save(); err != nil {
		t.Errorf("save while idle got %v", err)
	}
}

func TestRangeChecks(t *testing.T) {
	s := New(&memStore{}, nil)
	s.Set(-1, 5)
	s.Set(NumItems, 5)
	if s.Get(-1) != 0 || s.Get(NumItems) != 0 {
		t.Error("out of range access not ignored")
	}
}

func TestDescribe(t *testing.T) {
	if Describe(HP82143AEnabled) == "" {
		t.Error("printer setting has no description")
	}
	if Describe(14) != "" {
		t.Error("placeholder slot has a description")
	}
}
