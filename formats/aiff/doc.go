// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into stream.Source for ambient mixing,
// using github.com/go-audio/aiff.
//
//	file, _ := os.Open("stream.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//
// Only 16-bit PCM files are supported.
package aiff
