package scenarios

import "fmt"

// Gender of a Person.
type Gender int

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "FEMALE"
	case Male:
		return "MALE"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// Person is the sample record used by the grouping and map scenarios.
type Person struct {
	Name   string
	Gender Gender
	Age    int
}

func (p Person) String() string {
	return fmt.Sprintf("%s -- %s -- %d", p.Name, p.Gender, p.Age)
}

// People returns the sample population. Names repeat so grouping has
// something to do.
func People() []Person {
	return []Person{
		{"Sara", Female, 20},
		{"Brenda", Female, 20},
		{"Sara", Female, 22},
		{"Bob", Male, 20},
		{"Paula", Female, 32},
		{"Paul", Male, 32},
		{"Jack", Male, 2},
		{"Jack", Male, 72},
		{"Jill", Female, 12},
	}
}
