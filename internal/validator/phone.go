package validator

import "fmt"

// dddRegions maps every assigned Brazilian area code to its region. Absent
// keys are unassigned DDDs.
var dddRegions = map[string]string{
	"11": "São Paulo - Capital",
	"12": "São Paulo - Vale do Paraíba",
	"13": "São Paulo - Baixada Santista",
	"14": "São Paulo - Bauru",
	"15": "São Paulo - Sorocaba",
	"16": "São Paulo - Ribeirão Preto",
	"17": "São Paulo - São José do Rio Preto",
	"18": "São Paulo - Presidente Prudente",
	"19": "São Paulo - Campinas",
	"21": "Rio de Janeiro - Capital",
	"22": "Rio de Janeiro - Interior",
	"24": "Rio de Janeiro - Interior",
	"27": "Espírito Santo - Capital",
	"28": "Espírito Santo - Interior",
	"31": "Minas Gerais - Belo Horizonte",
	"32": "Minas Gerais - Juiz de Fora",
	"33": "Minas Gerais - Governador Valadares",
	"34": "Minas Gerais - Uberlândia",
	"35": "Minas Gerais - Poços de Caldas",
	"37": "Minas Gerais - Divinópolis",
	"38": "Minas Gerais - Montes Claros",
	"41": "Paraná - Curitiba",
	"42": "Paraná - Ponta Grossa",
	"43": "Paraná - Londrina",
	"44": "Paraná - Maringá",
	"45": "Paraná - Foz do Iguaçu",
	"46": "Paraná - Francisco Beltrão",
	"47": "Santa Catarina - Joinville",
	"48": "Santa Catarina - Florianópolis",
	"49": "Santa Catarina - Chapecó",
	"51": "Rio Grande do Sul - Porto Alegre",
	"53": "Rio Grande do Sul - Pelotas",
	"54": "Rio Grande do Sul - Caxias do Sul",
	"55": "Rio Grande do Sul - Santa Maria",
	"61": "Distrito Federal - Brasília",
	"62": "Goiás - Goiânia",
	"63": "Tocantins",
	"64": "Goiás - Rio Verde",
	"65": "Mato Grosso - Cuiabá",
	"66": "Mato Grosso - Rondonópolis",
	"67": "Mato Grosso do Sul",
	"68": "Acre",
	"69": "Rondônia",
	"71": "Bahia - Salvador",
	"73": "Bahia - Itabuna",
	"74": "Bahia - Juazeiro",
	"75": "Bahia - Feira de Santana",
	"77": "Bahia - Vitória da Conquista",
	"79": "Sergipe",
	"81": "Pernambuco - Recife",
	"82": "Alagoas",
	"83": "Paraíba",
	"84": "Rio Grande do Norte",
	"85": "Ceará - Fortaleza",
	"86": "Piauí - Teresina",
	"87": "Pernambuco - Interior",
	"88": "Ceará - Interior",
	"89": "Piauí - Interior",
	"91": "Pará - Belém",
	"92": "Amazonas - Manaus",
	"93": "Pará - Santarém",
	"94": "Pará - Marabá",
	"95": "Roraima",
	"96": "Amapá",
	"97": "Amazonas - Interior",
	"98": "Maranhão - São Luís",
	"99": "Maranhão - Interior",
}

// KnownDDD reports whether dd is an assigned Brazilian area code.
func KnownDDD(dd string) bool {
	_, ok := dddRegions[dd]
	return ok
}

// DDDRegion returns the region served by an area code, or "" if unassigned.
func DDDRegion(dd string) string {
	return dddRegions[dd]
}

// Phone validates a 10 or 11 digit national number: assigned DDD plus an
// 8-digit landline or a 9-digit mobile subscriber starting with 9.
func Phone(digits string) Outcome {
	if len(digits) < 10 || len(digits) > 11 || !allDigits(digits) {
		return invalid(ReasonBadLength)
	}

	ddd := digits[:2]
	subscriber := digits[2:]

	region, assigned := dddRegions[ddd]
	if !assigned {
		return invalid(ReasonBadFormat)
	}

	mobile := len(subscriber) == 9
	if mobile && subscriber[0] != '9' {
		return invalid(ReasonBadFormat)
	}

	kind := "Fixo"
	format := fmt.Sprintf("(%s) %s-%s", ddd, subscriber[:4], subscriber[4:])
	if mobile {
		kind = "Celular"
		format = fmt.Sprintf("(%s) %s-%s", ddd, subscriber[:5], subscriber[5:])
	}

	return Outcome{
		Valid:  true,
		Reason: ReasonOK,
		Attributes: map[string]string{
			"ddd":     ddd,
			"numero":  subscriber,
			"regiao":  region,
			"tipo":    kind,
			"formato": format,
		},
	}
}
