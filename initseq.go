package tftspi

import "time"

// runTable8 replays an 8-bit register table. A truncated trailing record
// sends the bytes it has and ends the table.
func runTable8(w *wire, v variant, t []byte) {
	for len(t) > 0 && w.err == nil {
		if len(t) == 1 {
			v.burst(w, t[0], nil)
			return
		}
		cmd, n := t[0], int(t[1])
		t = t[2:]
		if cmd == delay8 {
			w.pause(time.Duration(n) * time.Millisecond)
			continue
		}
		if n > len(t) {
			n = len(t)
		}
		v.burst(w, cmd, t[:n])
		t = t[n:]
	}
}

// runTable16 replays a 16-bit register table.
func runTable16(w *wire, t []uint16) {
	for ; len(t) > 0 && w.err == nil; t = t[2:] {
		if len(t) == 1 {
			w.cmd16(t[0])
			return
		}
		if t[0] == delay16 {
			w.pause(time.Duration(t[1]) * time.Millisecond)
			continue
		}
		w.reg16(t[0], t[1])
	}
}
