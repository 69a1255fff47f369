package provider

import (
	"fmt"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals // locale data
var (
	brFirstNames = []string{
		"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Daniela", "Eduardo", "Fernanda",
		"Gabriel", "Helena", "Igor", "Juliana", "João", "Larissa", "Lucas", "Mariana",
		"Mateus", "Natália", "Otávio", "Paula", "Rafael", "Sofia", "Thiago", "Vitória",
	}
	brLastNames = []string{
		"Almeida", "Alves", "Araújo", "Barbosa", "Cardoso", "Carvalho", "Costa", "Ferreira",
		"Gomes", "Lima", "Martins", "Melo", "Oliveira", "Pereira", "Ribeiro", "Rodrigues",
		"Santos", "Silva", "Souza", "Teixeira",
	}
	brStreetPrefixes = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça", "Rodovia"}
	brBairros        = []string{
		"Centro", "Jardim América", "Vila Mariana", "Boa Vista", "Santa Efigênia", "Copacabana",
		"Moinhos de Vento", "Savassi", "Batel", "Meireles", "Pituba", "Boa Viagem",
		"Jardim Botânico", "Lapa", "Liberdade", "São Cristóvão",
	}
	brCities = []string{
		"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Porto Alegre", "Curitiba", "Salvador",
		"Recife", "Fortaleza", "Manaus", "Belém", "Goiânia", "Campinas", "Florianópolis",
		"Vitória", "Natal", "João Pessoa", "Maceió", "Teresina", "Cuiabá", "Campo Grande",
	}
	brStates = []string{
		"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará", "Distrito Federal",
		"Espírito Santo", "Goiás", "Maranhão", "Mato Grosso", "Mato Grosso do Sul",
		"Minas Gerais", "Pará", "Paraíba", "Paraná", "Pernambuco", "Piauí", "Rio de Janeiro",
		"Rio Grande do Norte", "Rio Grande do Sul", "Rondônia", "Roraima", "Santa Catarina",
		"São Paulo", "Sergipe", "Tocantins",
	}
	brEmailDomains = []string{"gmail.com", "hotmail.com", "yahoo.com.br", "uol.com.br", "bol.com.br", "outlook.com"}
)

// brazilianCapabilities is the pt_BR locale pack.
// It adds the Brazilian documents and replaces the common capabilities
// that need Brazilian names or formatting.
func (p *Provider) brazilianCapabilities() map[string]Capability {
	f := p.faker

	return map[string]Capability{
		"first_name": str(p.brFirstName),
		"last_name":  str(p.brLastName),
		"name":       str(p.brName),
		"email":      str(p.brEmail),

		"cpf":  str(p.cpf),
		"cnpj": str(p.cnpj),
		"rg":   str(p.rg),

		"phone_number":     str(func() string { return f.Numerify("(##) ####-####") }),
		"cellphone_number": str(func() string { return f.Numerify("(##) 9####-####") }),

		"street_address": str(p.brStreetAddress),
		"bairro":         str(func() string { return f.RandomString(brBairros) }),
		"city":           str(func() string { return f.RandomString(brCities) }),
		"state":          str(func() string { return f.RandomString(brStates) }),
		"postcode":       str(func() string { return f.Numerify("#####-###") }),
		"country":        str(func() string { return "Brasil" }),
	}
}

func (p *Provider) brFirstName() string {
	return p.faker.RandomString(brFirstNames)
}

func (p *Provider) brLastName() string {
	return p.faker.RandomString(brLastNames)
}

func (p *Provider) brName() string {
	return p.brFirstName() + " " + p.brLastName()
}

func (p *Provider) brEmail() string {
	user := strings.ToLower(p.faker.Username())
	domain := p.faker.RandomString(brEmailDomains)

	return user + "@" + domain
}

func (p *Provider) brStreetAddress() string {
	const maxNumber = 9999

	return fmt.Sprintf("%s %s, %d",
		p.faker.RandomString(brStreetPrefixes),
		p.brLastName(),
		p.faker.Number(1, maxNumber),
	)
}

// cpf returns a formatted individual taxpayer number with valid check digits: ###.###.###-##.
func (p *Provider) cpf() string {
	const baseLen = 9

	digits := p.digits(baseLen)
	digits = append(digits, mod11CheckDigit(digits, descendingWeights(len(digits)+1)))
	digits = append(digits, mod11CheckDigit(digits, descendingWeights(len(digits)+1)))

	s := joinDigits(digits)

	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// cnpj returns a formatted company taxpayer number of a head office
// with valid check digits: ##.###.###/0001-##.
func (p *Provider) cnpj() string {
	const baseLen = 8

	digits := p.digits(baseLen)
	digits = append(digits, 0, 0, 0, 1)
	digits = append(digits, mod11CheckDigit(digits, cnpjWeights(len(digits))))
	digits = append(digits, mod11CheckDigit(digits, cnpjWeights(len(digits))))

	s := joinDigits(digits)

	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}

// rg returns a formatted identity card number with the check digit used in São Paulo: ##.###.###-D.
// The check digit is X for 10.
func (p *Provider) rg() string {
	const baseLen = 8

	digits := p.digits(baseLen)

	sum := 0
	for i, d := range digits {
		sum += d * (i + 2) //nolint:mnd // weights start at 2
	}

	check := strconv.Itoa((11 - sum%11) % 11) //nolint:mnd // modulo 11
	if check == "10" {
		check = "X"
	}

	s := joinDigits(digits)

	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "-" + check
}

func (p *Provider) digits(n int) []int {
	const maxDigit = 9

	digits := make([]int, n)
	for i := range digits {
		digits[i] = p.faker.Number(0, maxDigit)
	}

	return digits
}

// mod11CheckDigit is the check digit algorithm shared by CPF and CNPJ.
func mod11CheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}

	rest := sum % 11 //nolint:mnd // modulo 11
	if rest < 2 {    //nolint:mnd
		return 0
	}

	return 11 - rest //nolint:mnd // modulo 11
}

// descendingWeights returns the CPF weights n, n-1, ..., 2.
func descendingWeights(n int) []int {
	weights := make([]int, 0, n-1)
	for w := n; w >= 2; w-- {
		weights = append(weights, w)
	}

	return weights
}

// cnpjWeights returns the CNPJ weights for n digits: cycling 2..9 from the right.
func cnpjWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[n-1-i] = 2 + i%8 //nolint:mnd // weights cycle from 2 to 9
	}

	return weights
}

func joinDigits(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}

	return b.String()
}
