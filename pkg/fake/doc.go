// Package fake produces Polish-locale fake values for test fixtures and
// database seeding: people's names, e-mail addresses, street addresses,
// filler text, dates and random choices.
//
// A Faker wraps a seedable *gofakeit.Faker. Seeding with the same non-zero
// value yields the same sequence, which keeps fixture-based tests
// reproducible; seed 0 picks a random seed.
//
//	f := fake.New(42)
//	first, last := f.Person()
//	email := f.Email(first, last) // e.g. "zofia.wisniewska17@onet.pl"
//
// A Faker also satisfies orgname.Picker, so a single seed can drive both
// field values and organization names.
//
// A Faker is not safe for concurrent use.
package fake
