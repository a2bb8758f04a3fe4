package fuzzy

// Rules is the canonical rule list, evaluated in this exact order. The order
// is significant: the numeric cache-buster rule is a superset pattern and
// must stay behind the service-specific rules ahead of it. Do not re-sort.
var Rules = compile([]Rule{
	{
		// Any playback CDN host counts: the endpoint is identified by its
		// `videoplayback?` path and `id` parameter alone.
		Name:     "youtube-videoplayback",
		Pattern:  `.*/(videoplayback)\?(?:.*&)?(id=[^&]+).*`,
		Template: "youtube.fuzzy.replayweb.page/${1}?${2}",
	},
	{
		Name:     "youtube-get-video-info",
		Pattern:  `(?:www\.)?youtube(?:-nocookie)?\.com/(get_video_info\?).*(video_id=[^&]+).*`,
		Template: "youtube.fuzzy.replayweb.page/${1}${2}",
	},
	{
		Name:     "numeric-cache-buster",
		Pattern:  `([^?]+\?)[\d]+$`,
		Template: "${1}",
	},
	{
		Name:     "youtube-youtubei",
		Pattern:  `(?:www\.)?youtube(?:-nocookie)?\.com/(youtubei/[^?]+).*(videoId[^&]+).*`,
		Template: "youtube.fuzzy.replayweb.page/${1}?${2}",
	},
	{
		Name:     "youtube-embed",
		Pattern:  `(?:www\.)?youtube(?:-nocookie)?\.com/embed/([^?]+).*`,
		Template: "youtube.fuzzy.replayweb.page/embed/${1}",
	},
	{
		// Second pass over already-canonical embed paths. Stripping residual
		// query or fragment noise here keeps reduction idempotent.
		Name:     "youtube-embed-canonical",
		Pattern:  `youtube\.fuzzy\.replayweb\.page/embed/([^?&#]+).*`,
		Template: "youtube.fuzzy.replayweb.page/embed/${1}",
	},
	{
		Name:     "vimeo-cdn-media",
		Pattern:  `.*(?:gcs-vimeo|vod|vod-progressive)\.akamaized\.net.*?/([\d/]+.mp4)$`,
		Template: "vimeo-cdn.fuzzy.replayweb.page/${1}",
	},
	{
		Name:     "vimeo-player-video",
		Pattern:  `.*player.vimeo.com/(video/[\d]+)\?.*`,
		Template: "vimeo.fuzzy.replayweb.page/${1}",
	},
})
