package provider

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"

	maxTextChars = 140
)

var epoch = time.Unix(0, 0).UTC() //nolint:gochecknoglobals // constant

// str adapts a generator of strings to a Capability.
func str(f func() string) Capability {
	return func() (any, error) {
		return f(), nil
	}
}

// commonCapabilities are available in every locale.
// Locale packs overwrite entries that need local formatting.
func (p *Provider) commonCapabilities() map[string]Capability {
	f := p.faker

	return map[string]Capability{
		// person
		"name":          str(f.Name),
		"first_name":    str(f.FirstName),
		"last_name":     str(f.LastName),
		"email":         str(f.Email),
		"user_name":     str(f.Username),
		"password":      str(p.password),
		"date_of_birth": str(p.dateOfBirth),
		"phone_number":  str(f.Phone),
		"uuid4":         p.uuid4,
		"ulid":          p.ulid,

		// address
		"street_address": str(f.Street),
		"city":           str(f.City),
		"state":          str(f.State),
		"postcode":       str(f.Zip),
		"country":        str(f.Country),

		// company
		"company": str(f.Company),
		"job":     str(f.JobTitle),

		// internet
		"url":         str(f.URL),
		"domain_name": str(f.DomainName),
		"ipv4":        str(f.IPv4Address),

		// financial
		"price":              p.price,
		"currency_code":      str(f.CurrencyShort),
		"credit_card_number": str(p.creditCardNumber),

		// date and time
		"date":      str(p.date),
		"time":      str(p.timeOfDay),
		"date_time": str(p.dateTime),

		// text
		"word":     str(f.Word),
		"sentence": str(p.sentence),
		"text":     str(p.text),
	}
}

func (p *Provider) password() string {
	const length = 10

	return p.faker.Password(true, true, true, true, false, length)
}

// dateOfBirth returns the birthday of an adult between 18 and 80 years old.
func (p *Provider) dateOfBirth() string {
	const minAge, maxAge = 18, 80

	return p.faker.DateRange(
		p.refTime.AddDate(-maxAge, 0, 0),
		p.refTime.AddDate(-minAge, 0, 0),
	).Format(dateLayout)
}

// uuid4 draws the random bits from the provider's source, so seeded runs repeat the same UUIDs.
func (p *Provider) uuid4() (any, error) {
	id, err := uuid.NewRandomFromReader(p.faker.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: uuid4: %v", ErrInvocationFailed, err) //nolint:errorlint // keep the sentinel as the only wrapped error
	}

	return id.String(), nil
}

func (p *Provider) ulid() (any, error) {
	ts := p.faker.DateRange(p.refTime.AddDate(-2, 0, 0), p.refTime)

	id, err := ulid.New(ulid.Timestamp(ts), p.faker.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: ulid: %v", ErrInvocationFailed, err) //nolint:errorlint // keep the sentinel as the only wrapped error
	}

	return id.String(), nil
}

// price is a positive amount with at most three integer and exactly two fractional digits.
func (p *Provider) price() (any, error) {
	const lowest, highest = 0.01, 999.99

	return math.Round(p.faker.Price(lowest, highest)*100) / 100, nil //nolint:mnd // cents
}

func (p *Provider) creditCardNumber() string {
	return p.faker.CreditCardNumber(&gofakeit.CreditCardOptions{})
}

// date returns a day between the unix epoch and the reference time.
func (p *Provider) date() string {
	return p.faker.DateRange(epoch, p.refTime).Format(dateLayout)
}

func (p *Provider) timeOfDay() string {
	return fmt.Sprintf("%02d:%02d:%02d", p.faker.Hour(), p.faker.Minute(), p.faker.Second())
}

// dateTime returns an instant within the two years before the reference time.
func (p *Provider) dateTime() string {
	return p.faker.DateRange(p.refTime.AddDate(-2, 0, 0), p.refTime).Format(dateTimeLayout)
}

func (p *Provider) sentence() string {
	const minWords, maxWords = 4, 10

	return p.faker.Sentence(p.faker.Number(minWords, maxWords))
}

// text joins sentences to a text of at most maxTextChars characters.
func (p *Provider) text() string {
	var b strings.Builder

	for {
		s := p.sentence()

		if b.Len() == 0 {
			if len(s) >= maxTextChars {
				return strings.TrimSpace(s[:maxTextChars-1]) + "."
			}

			b.WriteString(s)

			continue
		}

		if b.Len()+1+len(s) > maxTextChars {
			return b.String()
		}

		b.WriteString(" ")
		b.WriteString(s)
	}
}
