// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into stream.Source for ambient
// mixing, using github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("waves.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes natively to float32, so samples pass through without
// quantization. Encoding is not supported.
package vorbis
