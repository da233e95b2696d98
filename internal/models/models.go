package models

import "encoding/json"

// Device describes the reference screen of a watch model.
type Device struct {
	ID           string
	Name         string
	Width        int // reference width in pixels
	Height       int // reference height in pixels
	CornerRadius int // reference corner radius in pixels
}

// Item is a single watch face entry returned by the catalog API.
type Item struct {
	Name          string `json:"name"`
	Nickname      string `json:"nickname"`
	Preview       string `json:"preview"`
	DownloadTimes int64  `json:"downloadTimes"`
	Views         int64  `json:"views"`
	UpdatedAt     *int64 `json:"updatedAt"`
}

// UnmarshalJSON fills in the defaults for keys missing from the payload.
func (i *Item) UnmarshalJSON(data []byte) error {
	type raw Item
	r := raw{Name: "Unknown", Nickname: "Unknown"}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*i = Item(r)
	return nil
}

// CatalogResponse is the body of a catalog listing.
type CatalogResponse struct {
	Code *int   `json:"code"`
	Data []Item `json:"data"`
}

// SuccessCode is the catalog status code for a usable listing.
const SuccessCode = 0

// Accepted reports whether the response carries a successful listing.
func (r *CatalogResponse) Accepted() bool {
	return r != nil && r.Code != nil && *r.Code == SuccessCode
}

// DeviceResult holds what one device contributed to a run. Err is only set
// when the fetch failed and is kept for logging; Items is empty in that case.
type DeviceResult struct {
	DeviceID string
	Items    []Item
	Err      error
}

// Report is the ordered set of per-device results of a run.
type Report struct {
	Results []DeviceResult
}

// HasItems reports whether at least one device has an item.
func (r Report) HasItems() bool {
	for _, res := range r.Results {
		if len(res.Items) > 0 {
			return true
		}
	}
	return false
}
