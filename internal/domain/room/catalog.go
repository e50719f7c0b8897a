package room

import (
	"fmt"

	"guesthouse-booking/internal/domain/money"
)

// Catalog is the immutable room list shipped with the build.
type Catalog struct {
	rooms []*Room
	byID  map[ID]*Room
}

func NewCatalog(rooms ...*Room) (*Catalog, error) {
	c := &Catalog{
		rooms: make([]*Room, 0, len(rooms)),
		byID:  make(map[ID]*Room, len(rooms)),
	}
	for _, r := range rooms {
		if _, dup := c.byID[r.ID()]; dup {
			return nil, fmt.Errorf("duplicate room id %q", r.ID())
		}
		c.rooms = append(c.rooms, r)
		c.byID[r.ID()] = r
	}
	return c, nil
}

func (c *Catalog) Find(id ID) (*Room, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c *Catalog) All() []*Room {
	out := make([]*Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}

type seed struct {
	id          ID
	number      string
	category    Category
	capacity    int
	priceDinars int64
	amenities   []string
	description string
}

var defaultSeeds = []seed{
	{"ch-11", "11", CategoryDouble, 2, 200, []string{"wifi", "air-conditioning", "sea-view", "private-bathroom"},
		"Double room on the first floor overlooking the sea."},
	{"ch-12", "12", CategoryTwin, 2, 180, []string{"wifi", "air-conditioning", "private-bathroom"},
		"Twin room with two single beds, garden side."},
	{"ch-13", "13", CategoryDoubleCrib, 3, 220, []string{"wifi", "air-conditioning", "baby-crib", "private-bathroom"},
		"Double room equipped with a baby crib."},
	{"ch-21", "21", CategoryFamiliale, 4, 320, []string{"wifi", "air-conditioning", "balcony", "kitchenette", "private-bathroom"},
		"Family room with a double bed and two singles."},
	{"ch-22", "22", CategoryDouble, 2, 210, []string{"wifi", "air-conditioning", "balcony", "private-bathroom"},
		"Double room with a balcony over the patio."},
	{"ch-31", "31", CategoryRoyalSuite, 2, 450, []string{"wifi", "air-conditioning", "sea-view", "terrace", "jacuzzi", "minibar"},
		"Top-floor suite with a private terrace and jacuzzi."},
}

// DefaultCatalog panics on invalid seed data since it is compiled in.
func DefaultCatalog() *Catalog {
	rooms := make([]*Room, 0, len(defaultSeeds))
	for _, s := range defaultSeeds {
		r, err := NewRoom(s.id, s.number, s.category, s.capacity, money.Dinars(s.priceDinars), s.amenities, s.description)
		if err != nil {
			panic(fmt.Sprintf("invalid catalog seed %s: %v", s.id, err))
		}
		rooms = append(rooms, r)
	}
	c, err := NewCatalog(rooms...)
	if err != nil {
		panic(err)
	}
	return c
}
