package perceptron

import "encoding/base64"

// MediaType is the kind of media being processed.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaFormat is the encoding format of embedded media.
type MediaFormat string

const (
	MediaPNG  MediaFormat = "png"
	MediaJPEG MediaFormat = "jpeg"
	MediaWebP MediaFormat = "webp"
	MediaMP4  MediaFormat = "mp4"
	MediaWebM MediaFormat = "webm"
)

// MediaType returns the media kind for this format.
func (f MediaFormat) MediaType() MediaType {
	switch f {
	case MediaMP4, MediaWebM:
		return MediaTypeVideo
	default:
		return MediaTypeImage
	}
}

// MIME returns the MIME type string, e.g. "image/png" or "video/mp4".
func (f MediaFormat) MIME() string {
	return string(f.MediaType()) + "/" + string(f)
}

// Media is the visual input of a request: either a remote URL or an
// embedded base64 payload. Use the ImageURL, VideoURL, MediaBase64 or
// MediaBytes constructors.
type Media struct {
	mediaType MediaType
	format    MediaFormat
	url       string
	data      string
}

// ImageURL references a remote image by URL.
func ImageURL(url string) Media {
	return Media{mediaType: MediaTypeImage, url: url}
}

// VideoURL references a remote video by URL.
func VideoURL(url string) Media {
	return Media{mediaType: MediaTypeVideo, url: url}
}

// MediaBase64 embeds already base64-encoded media data.
func MediaBase64(format MediaFormat, data string) Media {
	return Media{mediaType: format.MediaType(), format: format, data: data}
}

// MediaBytes embeds raw media bytes, base64-encoding them.
func MediaBytes(format MediaFormat, raw []byte) Media {
	return MediaBase64(format, base64.StdEncoding.EncodeToString(raw))
}

// MediaType returns the media kind.
func (m Media) MediaType() MediaType {
	return m.mediaType
}

// URL returns the value sent on the wire: the URL as-is for remote media,
// or a data:{mime};base64,{data} URL for embedded payloads.
func (m Media) URL() string {
	if m.data != "" {
		return "data:" + m.format.MIME() + ";base64," + m.data
	}
	return m.url
}
