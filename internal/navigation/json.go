// File: internal/navigation/json.go
package navigation

import (
	"encoding/json"
	"fmt"
)

type wirePage struct {
	Type          string `json:"type"`
	Category      string `json:"category,omitempty"`
	Subcategory   string `json:"subcategory,omitempty"`
	CreatorID     string `json:"creator_id,omitempty"`
	CreatorName   string `json:"creator_name,omitempty"`
	CreatorAvatar string `json:"creator_avatar,omitempty"`
	CreatorPageID string `json:"creator_page_id,omitempty"`
}

// MarshalPage encodes p as {"type": "...", ...params}.
func MarshalPage(p Page) ([]byte, error) {
	w, err := toWire(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalPage decodes the form produced by MarshalPage.
func UnmarshalPage(data []byte) (Page, error) {
	var w wirePage
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w)
}

// Envelope wraps a Page so it can sit inside JSON request and response bodies.
type Envelope struct {
	Page Page
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Page == nil {
		return MarshalPage(Home{})
	}
	return MarshalPage(e.Page)
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	p, err := UnmarshalPage(data)
	if err != nil {
		return err
	}
	e.Page = p
	return nil
}

func toWire(p Page) (wirePage, error) {
	if p == nil {
		return wirePage{}, fmt.Errorf("nil page")
	}
	w := wirePage{Type: p.Kind().String()}
	switch v := p.(type) {
	case Home, Auth, Fundraise, Explore, Search, Dashboard, ProfileSetup:
	case Category:
		w.Category, w.Subcategory = v.Category, v.Subcategory
	case Creator:
		w.CreatorID = v.CreatorID
	case Membership:
		setRef(&w, v.CreatorRef)
	case Posts:
		setRef(&w, v.CreatorRef)
	case Shop:
		setRef(&w, v.CreatorRef)
	default:
		return wirePage{}, fmt.Errorf("unsupported page %T", p)
	}
	return w, nil
}

func setRef(w *wirePage, ref CreatorRef) {
	w.CreatorID, w.CreatorName, w.CreatorAvatar, w.CreatorPageID = ref.ID, ref.Name, ref.Avatar, ref.PageID
}

func fromWire(w wirePage) (Page, error) {
	kind, ok := ParseKind(w.Type)
	if !ok {
		return nil, fmt.Errorf("unknown page type %q", w.Type)
	}
	ref := CreatorRef{ID: w.CreatorID, Name: w.CreatorName, Avatar: w.CreatorAvatar, PageID: w.CreatorPageID}
	switch kind {
	case KindHome:
		return Home{}, nil
	case KindAuth:
		return Auth{}, nil
	case KindFundraise:
		return Fundraise{}, nil
	case KindExplore:
		return Explore{}, nil
	case KindSearch:
		return Search{}, nil
	case KindDashboard:
		return Dashboard{}, nil
	case KindProfileSetup:
		return ProfileSetup{}, nil
	case KindCategory:
		return Category{Category: w.Category, Subcategory: w.Subcategory}, nil
	case KindCreator:
		return Creator{CreatorID: w.CreatorID}, nil
	case KindMembership:
		return Membership{ref}, nil
	case KindPosts:
		return Posts{ref}, nil
	case KindShop:
		return Shop{ref}, nil
	}
	return nil, fmt.Errorf("unhandled page type %q", w.Type)
}
