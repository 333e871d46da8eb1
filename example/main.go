package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chaintable"
)

func main() {
	// Two slots, so most names share a chain
	marks, err := chaintable.New[string, int](chaintable.WithSlots(2))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Printf("Table created with %d slots\n", marks.Capacity())

	// Insert some data
	for _, name := range []string{"Ivana", "Ante", "Jasna"} {
		marks.Put(name, 2)
	}
	marks.Put("Kristina", 5)

	fmt.Printf("Inserted %d students\n", marks.Size())

	// Retrieve and display some values
	for _, name := range []string{"Ivana", "Kristina", "Marko"} {
		grade, found := marks.Get(name)
		if found {
			fmt.Printf("%s => %d\n", name, grade)
		} else {
			fmt.Printf("%s not found\n", name)
		}
	}

	// Update a value
	marks.Put("Ivana", 5)
	if grade, found := marks.Get("Ivana"); found {
		fmt.Printf("Updated Ivana => %d, size still %d\n", grade, marks.Size())
	}

	// Remove a student
	marks.Remove("Kristina")
	fmt.Printf("Removed Kristina, size now %d, contains Kristina: %t\n",
		marks.Size(), marks.ContainsKey("Kristina"))

	fmt.Print(marks)
	fmt.Println("Example completed successfully")
}
