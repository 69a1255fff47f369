package provider

// americanCapabilities is the en_US locale pack.
// There is no cellphone_number, callers fall back to phone_number.
func (p *Provider) americanCapabilities() map[string]Capability {
	f := p.faker

	return map[string]Capability{
		"phone_number":      str(f.PhoneFormatted),
		"ssn":               str(func() string { return f.Numerify("###-##-####") }),
		"ein":               str(func() string { return f.Numerify("##-#######") }),
		"secondary_address": str(p.secondaryAddress),
		"state_abbr":        str(f.StateAbr),
	}
}

func (p *Provider) secondaryAddress() string {
	if p.faker.Bool() {
		return p.faker.Numerify("Apt. ###")
	}

	return p.faker.Numerify("Suite ###")
}
