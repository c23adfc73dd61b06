package schemaorg

import "github.com/rohmanhakim/jsonld-kit/pkg/jsonld"

// MapImage returns an ImageObject. The alternative text is emitted as caption.
func MapImage(in Image) jsonld.Node {
	n := jsonld.Node{"@type": "ImageObject"}
	putString(n, "contentUrl", in.URL)
	putString(n, "url", in.URL)
	putString(n, "caption", firstNonEmpty(in.AltText, in.Caption))
	if in.Width > 0 {
		n["width"] = quantitativeValue(in.Width, "")
	}
	if in.Height > 0 {
		n["height"] = quantitativeValue(in.Height, "")
	}
	return n
}

func MapVideo(in Video) jsonld.Node {
	n := jsonld.Node{"@type": "VideoObject"}
	putString(n, "name", in.Title)
	putString(n, "description", in.Description)
	putString(n, "uploadDate", in.UploadDate)
	putString(n, "thumbnailUrl", in.ThumbnailURL)
	putString(n, "contentUrl", in.URL)
	putString(n, "embedUrl", in.EmbedURL)
	putString(n, "duration", in.Duration)
	return n
}

func mapImages(images []Image) []jsonld.Node {
	out := make([]jsonld.Node, len(images))
	for i, img := range images {
		out[i] = MapImage(img)
	}
	return out
}

func mapVideos(videos []Video) []jsonld.Node {
	out := make([]jsonld.Node, len(videos))
	for i, v := range videos {
		out[i] = MapVideo(v)
	}
	return out
}

func optionalImage(img *Image) jsonld.Node {
	if img == nil {
		return nil
	}
	return MapImage(*img)
}

func optionalVideo(v *Video) jsonld.Node {
	if v == nil {
		return nil
	}
	return MapVideo(*v)
}

func mapAddress(in Address) jsonld.Node {
	n := jsonld.Node{"@type": "PostalAddress"}
	putString(n, "streetAddress", in.StreetAddress)
	putString(n, "addressLocality", in.AddressLocality)
	putString(n, "addressRegion", in.AddressRegion)
	putString(n, "postalCode", in.PostalCode)
	putString(n, "addressCountry", in.AddressCountry)
	return n
}
