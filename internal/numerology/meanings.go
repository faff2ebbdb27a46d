package numerology

// NumberMeaning pairs a digit with its short keyword description.
type NumberMeaning struct {
	Number  int
	Meaning string
}

const (
	unknownDestiny    = "Número desconhecido"
	unknownDetailed   = "Significado desconhecido"
	unknownRepetition = "Padrão repetitivo que indica um desequilíbrio a ser resolvido."

	pyramidMeaning = "A base da pirâmide (seu nome) representa sua essência. As camadas superiores revelam qualidades que você desenvolve ao longo da vida, culminando no número do topo que simboliza sua realização. Cada número na pirâmide revela aspectos diferentes de sua personalidade e destino."
)

// Indexed by digit; slot 0 is unused.
var destinyMeanings = [10]string{
	1: "O número 1 indica liderança, independência e originalidade. Você tem forte determinação e capacidade de iniciar projetos. Possui uma personalidade assertiva e tende a seguir seu próprio caminho.",
	2: "O número 2 revela cooperação, diplomacia e sensibilidade. Você tem grande capacidade para parcerias e trabalho em equipe. É paciente, detalhista e possui intuição aguçada para entender os outros.",
	3: "O número 3 simboliza expressão, criatividade e comunicação. Você tem facilidade para se expressar e influenciar pessoas. Sua natureza é otimista e você tende a encontrar soluções criativas para problemas.",
	4: "O número 4 representa estabilidade, organização e disciplina. Você valoriza a segurança e constrói bases sólidas para seus projetos. É trabalhador, responsável e persistente em seus objetivos.",
	5: "O número 5 indica liberdade, adaptabilidade e mudança. Você busca experiências variadas e não gosta de limitações. Possui grande versatilidade e capacidade de se ajustar a novas situações.",
	6: "O número 6 simboliza responsabilidade, harmonia e serviço. Você tem forte senso de dever com família e comunidade. É amoroso, protetor e busca criar equilíbrio em todos os aspectos da vida.",
	7: "O número 7 revela análise, sabedoria e espiritualidade. Você tem uma mente questionadora e busca conhecimento profundo. Sua natureza reflexiva o leva a buscar significados mais profundos na vida.",
	8: "O número 8 representa poder, abundância e autoridade. Você tem grande capacidade para realizações materiais e liderança. É ambicioso, pragmático e possui excelentes habilidades organizacionais.",
	9: "O número 9 indica compaixão, idealismo e conclusões. Você tem forte desejo de contribuir para um mundo melhor. É altruísta, criativo e capaz de inspirar os outros com sua visão humanitária.",
}

var detailedMeanings = [10]string{
	1: "Liderança, independência, originalidade, coragem e determinação.",
	2: "Cooperação, diplomacia, paciência, sensibilidade e intuição.",
	3: "Expressão, comunicação, criatividade, otimismo e sociabilidade.",
	4: "Estabilidade, organização, trabalho árduo, praticidade e confiabilidade.",
	5: "Liberdade, mudança, adaptabilidade, curiosidade e aventura.",
	6: "Responsabilidade, harmonia, amor, família e equilíbrio.",
	7: "Análise, introspecção, sabedoria, espiritualidade e perfeccionismo.",
	8: "Poder, abundância, autoridade, sucesso material e organização.",
	9: "Compaixão, humanitarismo, idealismo, generosidade e conclusão.",
}

var repetitionMeanings = [10]string{
	1: "Excesso de individualismo e egoísmo. Tendência ao isolamento e dificuldade em trabalhar em equipe. Possível arrogância e teimosia excessiva.",
	2: "Dependência emocional e indecisão crônica. Medo excessivo de conflitos e tendência a evitar confrontos necessários. Possível manipulação passiva.",
	3: "Superficialidade e dispersão de energia. Tendência a falar demais sem profundidade. Possível exibicionismo e dificuldade em completar projetos.",
	4: "Rigidez e resistência extrema a mudanças. Tendência ao perfeccionismo paralisante e crítica excessiva. Possível estagnação e medo de arriscar.",
	5: "Impulsividade descontrolada e busca constante por estímulos. Tendência a compromissos superficiais e instabilidade. Possível comportamento viciante.",
	6: "Controle excessivo sobre os outros e perfeccionismo. Tendência ao auto-sacrifício prejudicial e codependência. Possível manipulação emocional.",
	7: "Isolamento social excessivo e desconexão da realidade. Tendência ao ceticismo extremo e análise paralisante. Possível paranoia e desconfiança.",
	8: "Materialismo obsessivo e busca desenfreada por poder. Tendência à exploração dos outros e workaholic. Possível corrupção ética e moral.",
	9: "Idealismo desconectado da realidade e martírio. Tendência a fugir de responsabilidades pessoais em nome de causas maiores. Possível sensação de superioridade moral.",
}

func lookup(table *[10]string, n int, fallback string) string {
	if n < 1 || n > 9 {
		return fallback
	}
	return table[n]
}

// DestinyMeaning returns the paragraph for a destiny number.
func DestinyMeaning(n int) string {
	return lookup(&destinyMeanings, n, unknownDestiny)
}

// DetailedMeaning returns the keyword line for a single digit.
func DetailedMeaning(n int) string {
	return lookup(&detailedMeanings, n, unknownDetailed)
}

// ConsecutiveMeaning describes the imbalance signalled by a run of n.
func ConsecutiveMeaning(n int) string {
	return lookup(&repetitionMeanings, n, unknownRepetition)
}

// DetailedMeanings lists the keyword lines for digits 1 through 9.
func DetailedMeanings() []NumberMeaning {
	out := make([]NumberMeaning, 0, 9)
	for n := 1; n <= 9; n++ {
		out = append(out, NumberMeaning{Number: n, Meaning: detailedMeanings[n]})
	}
	return out
}

// PyramidMeaning explains how to read the pyramid as a whole.
func PyramidMeaning() string {
	return pyramidMeaning
}
