package domain

// Category is a spending category a request can be filed under.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MVZ is a cost center the user may file requests against.
type MVZ struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Office string `json:"office"`
}

// Initiator is an entry of the initiator picker. A nil UserID is the "all" row.
type Initiator struct {
	UserID *int64 `json:"userID"`
	Name   string `json:"name"`
}

// AllInitiators is the synthetic first row of every initiator list.
var AllInitiators = Initiator{UserID: nil, Name: "All"}
