// Package factory builds volontulo records filled with randomized,
// Polish-locale values for tests and database seeding.
//
// Every record type has a Build method, which returns an unsaved record,
// and a Create method, which also persists it through the Factory's
// volontulo.Storage. Field values can be pinned with override options:
//
//	f, err := factory.New(store, factory.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//
//	user, err := f.CreateUser(ctx,
//	    factory.WithFirstName("nie-Jan"),
//	    factory.WithLastName("nie-Kowalski"),
//	)
//
//	offer, err := f.CreateOffer(ctx,
//	    factory.WithOfferTitle("Jakiś tytuł"),
//	    factory.WithOfferOrganizationName("Nazwa odnośnej organizacji"),
//	    factory.WithVolunteers(user),
//	)
//
// Users get a bcrypt hash of "password123" unless another password is
// given, and their username mirrors the final e-mail address. Creating a user
// also creates its profile. Creating an offer creates its organization unless
// an existing one is supplied with WithOfferOrganization.
//
// A Factory is not safe for concurrent use.
package factory
