package storage

// Examples are the programs written into an empty store.
var Examples = []struct {
	Name   string
	Source string
}{
	{"hello", `print("Hello, world!")`},
	{"nums", "print(1)\nprint(257)"},
	{"average", `sum := 0
count := 0
averaging := true
while averaging {
    num := input("Enter a number:")
    if (num == "quit") {
        averaging := false
    } else {
        sum := (sum + num)
        count := (count + 1)
    }
}
print((sum / count))`},
	{"pi", `sum := 0
i := 0
neg := false
terms := input("Num terms:")
while (i < terms) {
    term := (1.0 / ((2.0 * i) + 1.0))
    if neg {
        term := -term
    }
    sum := (sum + term)
    neg := not neg
    i := (i + 1)
}
print((4 * sum))`},
}

// Seed writes the example programs when the store is empty. It reports
// whether anything was written.
func Seed(fs FS) (bool, error) {
	names, err := fs.ListDirectory()
	if err != nil {
		return false, err
	}
	if len(names) > 0 {
		return false, nil
	}
	for _, ex := range Examples {
		if err := WriteFile(fs, ex.Name, []byte(ex.Source)); err != nil {
			return false, err
		}
	}
	return true, nil
}
