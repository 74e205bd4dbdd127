package marina

// Location is where a boat is kept. It is one of Slip, Land, Trailer or
// Storage, and its Category always matches its concrete type.
type Location interface {
	Category() Category
	// extra returns the category specific field as written in the boat file.
	extra() string
	isLocation()
}

// Slip is a numbered slip on the water.
type Slip struct {
	Number int
}

// Land is a lettered bay on land.
type Land struct {
	Bay rune
}

// Trailer is a trailer identified by its license tag.
type Trailer struct {
	Tag string
}

// Storage is a numbered storage space.
type Storage struct {
	Number int
}

func (Slip) Category() Category    { return CategorySlip }
func (Land) Category() Category    { return CategoryLand }
func (Trailer) Category() Category { return CategoryTrailer }
func (Storage) Category() Category { return CategoryStorage }

func (l Slip) extra() string    { return itoa(l.Number) }
func (l Land) extra() string    { return string(l.Bay) }
func (l Trailer) extra() string { return l.Tag }
func (l Storage) extra() string { return itoa(l.Number) }

func (Slip) isLocation()    {}
func (Land) isLocation()    {}
func (Trailer) isLocation() {}
func (Storage) isLocation() {}
