package io

type size struct {
	W int `json:"w"`
	H int `json:"h"`
}

type grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W int     `json:"w"`
	H int     `json:"h"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type zone struct {
	Side string  `json:"side"`
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type piece struct {
	Index   int    `json:"index"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	Zones   []zone `json:"zones,omitempty"`
	Scatter *point `json:"scatter,omitempty"`
}

type document struct {
	Surface size    `json:"surface"`
	Source  size    `json:"source"`
	Grid    grid    `json:"grid"`
	Margin  float64 `json:"margin"`
	Frame   frame   `json:"frame"`
	Widths  []int   `json:"widths"`
	Heights []int   `json:"heights"`
	Pieces  []piece `json:"pieces"`
}
