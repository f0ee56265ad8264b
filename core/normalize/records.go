package normalize

import "github.com/gaurav-prasanna/ogmedia/core"

// Mappers turn one correlated tuple into a record. Values pass through
// untouched; a position the tuple could not fill stays nil.

func mapImage(t []any) core.ImageObject {
	return core.ImageObject{URL: t[0], Width: t[1], Height: t[2], Type: t[3]}
}

func mapTwitterImage(t []any) core.TwitterImageObject {
	return core.TwitterImageObject{URL: t[0], Width: t[1], Height: t[2], Alt: t[3]}
}

func mapTwitterPlayer(t []any) core.TwitterPlayerObject {
	return core.TwitterPlayerObject{URL: t[0], Width: t[1], Height: t[2], Stream: t[3]}
}

func mapMusicSong(t []any) core.MusicSongObject {
	return core.MusicSongObject{URL: t[0], Track: t[1], Disc: t[2]}
}
