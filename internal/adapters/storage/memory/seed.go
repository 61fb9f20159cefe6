package memory

import (
	"time"

	"vetdesk/internal/domain/organizations"
	"vetdesk/internal/domain/owners"
	"vetdesk/internal/domain/pets"
)

// Datasets fijos (modo dev / sin DB_DSN). Son de solo lectura:
// los repos devuelven copias.

var seedCreatedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func SeedOrganizations() []organizations.Organization {
	return []organizations.Organization{
		{Slug: "mr-pet", Name: "Mr. Pet Veterinary", City: "Springfield", Phone: "555-0100"},
		{Slug: "vet-care", Name: "VetCare Clinic", City: "Shelbyville", Phone: "555-0200"},
		{Slug: "happy-paws", Name: "Happy Paws Animal Center", City: "Springfield", Phone: "555-0300"},
		{Slug: "animal-hospital", Name: "City Animal Hospital", City: "Capital City", Phone: "555-0400"},
		{Slug: "north-clinic", Name: "North Clinic", City: "Ogdenville", Phone: "555-0500"},
	}
}

func SeedOwners() []owners.Owner {
	return []owners.Owner{
		{
			ID: 1, Type: owners.OwnerTypeIndividual, FirstName: "María", LastName: "González",
			Email: "maria.gonzalez@example.com", Phones: []string{"555-1001"},
			Address: "742 Evergreen Terrace", City: "Springfield",
			Organization: "mr-pet", PreferredContact: "phone", CreatedAt: seedCreatedAt,
		},
		{
			ID: 2, Type: owners.OwnerTypeIndividual, FirstName: "John", LastName: "Smith",
			Email: "john.smith@example.com", Phones: []string{"555-1002", "555-1003"},
			Address: "19 Main St", City: "Shelbyville",
			Organization: "vet-care", PreferredContact: "email", CreatedAt: seedCreatedAt,
		},
		{
			ID: 3, Type: owners.OwnerTypeBusiness, FirstName: "Paws", LastName: "Shelter",
			Email: "contact@paws-shelter.example.com", Phones: []string{"555-1004"},
			Address: "1 Shelter Rd", City: "Springfield",
			Organization: "happy-paws", PreferredContact: "email", CreatedAt: seedCreatedAt,
		},
		{
			ID: 4, Type: owners.OwnerTypeIndividual, FirstName: "Akira", LastName: "Tanaka",
			Email: "akira.tanaka@example.com", Phones: []string{},
			Address: "88 Cherry Ave", City: "Capital City",
			Organization: "animal-hospital", PreferredContact: "sms", CreatedAt: seedCreatedAt,
		},
		{
			ID: 5, Type: owners.OwnerTypeIndividual, FirstName: "Lucía", LastName: "Fernández",
			Email: "lucia.fernandez@example.com", Phones: []string{"555-1005"},
			Address: "5 Lake View", City: "Springfield",
			Organization: "mr-pet", PreferredContact: "phone", CreatedAt: seedCreatedAt,
		},
	}
}

func SeedPets() []pets.Pet {
	return []pets.Pet{
		{
			ID: 1, Name: "Milo", Type: pets.SpeciesDog, Breed: "labrador", Sex: pets.SexMale,
			BirthDate: date(2020, time.May, 14), Color: "yellow", Microchip: "985112000000001", WeightKg: 31.5,
			OwnerID: 1, Organization: "mr-pet", Allergies: []string{"chicken"}, Neutered: true, CreatedAt: seedCreatedAt,
		},
		{
			ID: 2, Name: "Luna", Type: pets.SpeciesCat, Breed: "siamese", Sex: pets.SexFemale,
			BirthDate: date(2021, time.February, 2), Color: "seal point", WeightKg: 4.2,
			OwnerID: 1, Organization: "mr-pet", Allergies: []string{}, Neutered: true, CreatedAt: seedCreatedAt,
		},
		{
			ID: 3, Name: "Rocky", Type: pets.SpeciesDog, Breed: "bulldog", Sex: pets.SexMale,
			BirthDate: date(2019, time.October, 30), Color: "brindle", Microchip: "985112000000003", WeightKg: 24,
			OwnerID: 2, Organization: "vet-care", Allergies: []string{"penicillin", "pollen"}, CreatedAt: seedCreatedAt,
		},
		{
			ID: 4, Name: "Kiwi", Type: pets.SpeciesBird, Breed: "budgerigar", Sex: pets.SexUnknown,
			Color: "green", WeightKg: 0.04,
			OwnerID: 4, Organization: "animal-hospital", Allergies: []string{}, CreatedAt: seedCreatedAt,
		},
		{
			ID: 5, Name: "Nube", Type: pets.SpeciesRabbit, Breed: "holland lop", Sex: pets.SexFemale,
			BirthDate: date(2022, time.July, 9), Color: "white", WeightKg: 1.8,
			OwnerID: 3, Organization: "happy-paws", Allergies: []string{}, Neutered: true, CreatedAt: seedCreatedAt,
		},
		{
			ID: 6, Name: "Simba", Type: pets.SpeciesCat, Breed: "maine coon", Sex: pets.SexMale,
			BirthDate: date(2018, time.January, 21), Color: "tabby", Microchip: "985112000000006", WeightKg: 7.9,
			OwnerID: 5, Organization: "mr-pet", Allergies: []string{}, CreatedAt: seedCreatedAt,
		},
		{
			ID: 7, Name: "Toby", Type: pets.SpeciesDog, Breed: "beagle", Sex: pets.SexMale,
			Color: "tricolor", WeightKg: 11.2,
			Organization: "north-clinic", Allergies: []string{}, CreatedAt: seedCreatedAt,
		},
	}
}
