package tui

// Selection lists offered by the product registration form. The
// backend stores the chosen strings verbatim, so the values here are
// the canonical wire values.

// Empresas lists the companies a product can belong to.
var Empresas = []string{
	"AMARIS DO BRASIL ASSESSORIA EMPRESARIAL",
	"AMG - SOLUCOES INDUSTRIAIS",
	"BANCO ITAÚ S/A",
	"UNIPAC",
	"SODEXO",
}

// LocaisDeArmazenamento lists the storage locations.
var LocaisDeArmazenamento = []string{
	"Almoxarifado",
	"Armário corta fogo",
	"Casa de tintas",
	"Laboratórios",
	"Tancagem",
	"Toller",
}

// EstadosFisicos lists the physical states.
var EstadosFisicos = []string{
	"Líquido",
	"Sólido",
	"Gasoso",
}

// GHS hazard option lists, one per classification axis.
var (
	PerigosFisicos = []string{
		"Explosivo",
		"Inflamável",
		"Gás sob pressão",
		"Corrosivo",
		"Oxidante",
	}

	PerigosSaude = []string{
		"Irritação da Pele",
		"Toxicidade Aguda",
		"Corrosão da Pele",
		"Perigo por Respiração",
	}

	PerigosMeioAmbiente = []string{
		"Perigoso para o meio ambiente",
	}
)

// PalavrasDePerigo lists the GHS signal words.
var PalavrasDePerigo = []string{
	"Perigo",
	"Atenção",
}
