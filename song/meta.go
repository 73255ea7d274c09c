package song

import (
	"fmt"

	"k8s.io/utils/pointer"
)

const (
	unsetText = "-"
	unsetYear = 1970
)

// Meta holds the free text information about a song. Every field is optional.
type Meta struct {
	title      *string
	album      *string
	comment    *string
	songwriter *string
	composer   *string
	arranger   *string
	copyright  *string
	artist     *string
	artistPage *string
	genre      *string
	year       *int32
}

func (m Meta) String() string {
	return fmt.Sprintf(
		"Title: '%s' Album: '%s' Year: '%d' Comments: '%s' Songwriter: '%s' Composer: '%s' Arranger: '%s' Copyright: '%s' Artist: '%s' Page: '%s' Genre: '%s'",
		orUnset(m.title),
		orUnset(m.album),
		pointer.Int32PtrDerefOr(m.year, unsetYear),
		orUnset(m.comment),
		orUnset(m.songwriter),
		orUnset(m.composer),
		orUnset(m.arranger),
		orUnset(m.copyright),
		orUnset(m.artist),
		orUnset(m.artistPage),
		orUnset(m.genre),
	)
}

func orUnset(s *string) string {
	if s == nil {
		return unsetText
	}
	return *s
}

func get(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func (m *Meta) GetTitle() (string, bool)      { return get(m.title) }
func (m *Meta) GetAlbum() (string, bool)      { return get(m.album) }
func (m *Meta) GetComment() (string, bool)    { return get(m.comment) }
func (m *Meta) GetSongwriter() (string, bool) { return get(m.songwriter) }
func (m *Meta) GetComposer() (string, bool)   { return get(m.composer) }
func (m *Meta) GetArranger() (string, bool)   { return get(m.arranger) }
func (m *Meta) GetCopyright() (string, bool)  { return get(m.copyright) }
func (m *Meta) GetArtist() (string, bool)     { return get(m.artist) }
func (m *Meta) GetArtistPage() (string, bool) { return get(m.artistPage) }
func (m *Meta) GetGenre() (string, bool)      { return get(m.genre) }

func (m *Meta) GetYear() (int32, bool) {
	if m.year == nil {
		return 0, false
	}
	return *m.year, true
}

func (m *Meta) SetTitle(value string)      { m.title = pointer.StringPtr(value) }
func (m *Meta) SetAlbum(value string)      { m.album = pointer.StringPtr(value) }
func (m *Meta) SetComment(value string)    { m.comment = pointer.StringPtr(value) }
func (m *Meta) SetSongwriter(value string) { m.songwriter = pointer.StringPtr(value) }
func (m *Meta) SetComposer(value string)   { m.composer = pointer.StringPtr(value) }
func (m *Meta) SetArranger(value string)   { m.arranger = pointer.StringPtr(value) }
func (m *Meta) SetCopyright(value string)  { m.copyright = pointer.StringPtr(value) }
func (m *Meta) SetArtist(value string)     { m.artist = pointer.StringPtr(value) }
func (m *Meta) SetArtistPage(value string) { m.artistPage = pointer.StringPtr(value) }
func (m *Meta) SetGenre(value string)      { m.genre = pointer.StringPtr(value) }
func (m *Meta) SetYear(value int32)        { m.year = pointer.Int32Ptr(value) }
