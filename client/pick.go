package client

import "math/rand/v2"

// PickBanner selects a random item for the hero banner, conventionally from
// the trending row. Returns false when the row is empty.
func PickBanner(items []CatalogItem) (CatalogItem, bool) {
	if len(items) == 0 {
		return CatalogItem{}, false
	}
	return items[rand.IntN(len(items))], true
}

// PickTrailer selects the video to play for a title: the first YouTube
// video typed "Trailer", else the first YouTube video of any type. Returns
// false when the title has no playable video.
func PickTrailer(d *Details) (Video, bool) {
	if d == nil {
		return Video{}, false
	}
	for _, v := range d.Videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v, true
		}
	}
	for _, v := range d.Videos.Results {
		if v.Site == "YouTube" {
			return v, true
		}
	}
	return Video{}, false
}
