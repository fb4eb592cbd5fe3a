package protocol

type ReqSelectShip struct {
	Size int `json:"size"`
}

type ReqCoordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}
