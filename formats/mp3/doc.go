// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into stream.Source for ambient mixing,
// using github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("forest.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always produces stereo 16-bit PCM; the source reports two channels
// regardless of the original encoding. MP3 encoding is not supported.
package mp3
