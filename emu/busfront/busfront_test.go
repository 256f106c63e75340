/*
 * TULIP4041 - bus frontend test cases.
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

package busfront

import (
	"testing"
	"time"
)

func TestCycleOrder(t *testing.T) {
	f := New()
	f.SetPWO(true)
	f.FeedCycle(0x840, 0x8123, 0x11111111, 0x222222, 0x7, 0x70)

	w, ok := f.GetInst()
	if !ok || w != 0x840 {
		t.Fatalf("instruction got %03X/%v", w, ok)
	}
	w, ok = f.GetData()
	if !ok || w != 0x11111111 {
		t.Fatalf("data low got %08X/%v", w, ok)
	}
	w, ok = f.GetAddr()
	if !ok || w != 0x8123 {
		t.Fatalf("address got %04X/%v", w, ok)
	}
	w, ok = f.GetData()
	if !ok || w != 0x222222 {
		t.Fatalf("data high got %06X/%v", w, ok)
	}
	w, ok = f.TryGetFI()
	if !ok || w != 0x7 {
		t.Fatalf("fi low got %X/%v", w, ok)
	}
}

// A falling PWO edge unblocks a waiting read and flushes the FIFOs.
func TestPWODropUnblocks(t *testing.T) {
	f := New()
	f.SetPWO(true)

	done := make(chan bool)
	go func() {
		_, ok := f.GetInst()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	f.SetPWO(false)

	select {
	case ok := <-done:
		if ok {
			t.Error("blocked read returned data on the PWO drop")
		}
	case <-time.After(time.Second):
		t.Fatal("read still blocked after the PWO drop")
	}
}

func TestPWOFlushesFIFOs(t *testing.T) {
	f := New()
	f.SetPWO(true)
	f.FeedInst(0x123)
	f.PutISA(0x456)
	f.SetPWO(false)

	if _, ok := f.TryGetData(); ok {
		t.Error("data FIFO survived the PWO edge")
	}
	if _, ok := f.TakeISA(); ok {
		t.Error("ISA driver FIFO survived the PWO edge")
	}
	// the instruction FIFO is empty too: a read with PWO low drains
	// only leftovers
	if w, ok := f.GetInst(); ok {
		t.Errorf("instruction FIFO survived the PWO edge: %03X", w)
	}
}

func TestWaitPWO(t *testing.T) {
	f := New()
	done := make(chan struct{})
	go func() {
		f.WaitPWO()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("WaitPWO returned with PWO low")
	default:
	}

	f.SetPWO(true)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitPWO still blocked with PWO high")
	}
}

func TestWake(t *testing.T) {
	f := New()
	f.Wake()
	if !f.TakeWake() {
		t.Error("wake request lost")
	}
	if f.TakeWake() {
		t.Error("wake request delivered twice")
	}
}
