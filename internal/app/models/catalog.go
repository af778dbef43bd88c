package models

// Catalog lists the canonical values offered by the forms.
type Catalog struct {
	Institutions   []string `json:"institutions"`
	Programs       []string `json:"programs"`
	AcademicLevels []string `json:"academicLevels"`
	DocumentTypes  []string `json:"documentTypes"`
	Genders        []string `json:"genders"`
	MaritalStatus  []string `json:"maritalStatus"`
	Sectors        []string `json:"sectors"`
	ContractTypes  []string `json:"contractTypes"`
}

// DefaultCatalog is served by GET /catalog.
var DefaultCatalog = Catalog{
	Institutions: []string{
		"Universidad de Nariño",
		"Universidad Mariana",
		"Universidad Cooperativa de Colombia",
		"Institución Universitaria CESMAG",
		"Universidad Nacional de Colombia",
		"SENA",
	},
	Programs: []string{
		"Ingeniería de Sistemas",
		"Ingeniería Civil",
		"Ingeniería Electrónica",
		"Administración de Empresas",
		"Contaduría Pública",
		"Derecho",
		"Medicina",
		"Enfermería",
		"Psicología",
		"Licenciatura en Matemáticas",
	},
	AcademicLevels: AcademicLevels,
	DocumentTypes:  []string{"CC", "TI", "CE", "PA"},
	Genders:        []string{"Masculino", "Femenino", "Otro"},
	MaritalStatus:  []string{"Soltero(a)", "Casado(a)", "Unión libre", "Divorciado(a)", "Viudo(a)"},
	Sectors: []string{
		"Tecnología",
		"Educación",
		"Salud",
		"Financiero",
		"Gobierno",
		"Construcción",
		"Comercio",
		"Agroindustria",
		"Otro",
	},
	ContractTypes: []string{"Indefinido", "Término fijo", "Prestación de servicios", "Obra o labor", "Independiente"},
}
