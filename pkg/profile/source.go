package profile

import "image"

// SourceKind identifies what the primary layer is showing.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceName
	SourcePhoto
)

// String returns "none", "name" or "photo".
func (k SourceKind) String() string {
	switch k {
	case SourceName:
		return "name"
	case SourcePhoto:
		return "photo"
	default:
		return "none"
	}
}

// Source is the widget's content: a display name or a photo, never both.
// The zero value is SourceNone.
type Source struct {
	kind  SourceKind
	name  string
	photo image.Image
}

// NameSource returns a Source showing the initials of name.
func NameSource(name string) Source { return Source{kind: SourceName, name: name} }

// PhotoSource returns a Source showing img.
func PhotoSource(img image.Image) Source { return Source{kind: SourcePhoto, photo: img} }

// Kind returns the active variant.
func (s Source) Kind() SourceKind { return s.kind }

// Name returns the display name when the source is a name.
func (s Source) Name() (string, bool) { return s.name, s.kind == SourceName }

// Photo returns the image when the source is a photo.
func (s Source) Photo() (image.Image, bool) { return s.photo, s.kind == SourcePhoto }
