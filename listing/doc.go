// Package listing turns raw images and text word listings into
// disassembled address, word and text lines.
package listing
