// Package io loads the images a widget shows and writes rendered artifacts.
//
// # Import
//
// Use [LoadImage] to read a photo or channel icon from a file path, or
// [ReadImage] to decode from any io.Reader. PNG, JPEG, GIF, BMP and TIFF are
// supported, and EXIF orientation is applied so phone photos land upright:
//
//	photo, err := io.LoadImage("ross.jpg")
//	if err != nil {
//	    return err
//	}
//	err = w.SetPhoto(photo)
//
// A missing file fails with FILE_NOT_FOUND. A file that is not an image
// fails with INVALID_INPUT.
//
// # Export
//
// [WriteFile] writes rendered bytes, creating parent directories as needed.
// [ExportImage] encodes a bitmap using the format implied by the extension.
package io
