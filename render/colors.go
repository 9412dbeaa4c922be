package render

// Scene palette
var (
	RgbBackground = RGB{6, 6, 12}
	RgbStar       = RGB{200, 205, 230}

	RgbHudText      = RGB{200, 200, 210}
	RgbHudDim       = RGB{100, 100, 110}
	RgbHudSelected  = RGB{255, 255, 255}
	RgbHudBarEmpty  = RGB{45, 45, 55}
	RgbStatusOK     = RGB{74, 222, 128}
	RgbStatusWait   = RGB{250, 204, 21}
	RgbStatusError  = RGB{248, 113, 113}
	RgbPaused       = RGB{255, 200, 50}
	RgbBannerText   = RGB{255, 255, 255}
	RgbBannerShadow = RGB{120, 0, 40}
	RgbCelebration  = RGB{255, 105, 180}
)
