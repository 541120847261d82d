package reindeer

type Summary struct {
	Name     string `json:"name"`
	Strength uint32 `json:"strength"`
}

type Reindeer struct {
	Name         string  `json:"name"`
	Strength     uint32  `json:"strength"`
	Speed        float64 `json:"speed"`
	Height       uint32  `json:"height"`
	AntlerWidth  uint32  `json:"antler_width"`
	SnowMagic    uint32  `json:"snow_magic_power"`
	FavoriteFood string  `json:"favorite_food"`
	CandiesEaten uint32  `json:"cAnD13s_3ATeN-yesT3rdAy"`
}

type ContestResults struct {
	Fastest  string `json:"fastest"`
	Tallest  string `json:"tallest"`
	Magician string `json:"magician"`
	Consumer string `json:"consumer"`
}
