package risk

const (
	// ThemeCount é o número fixo de temas psicossociais do questionário
	ThemeCount = 9
	// QuestionsPerTheme é o tamanho de cada bloco contíguo de perguntas
	QuestionsPerTheme = 10
)

// Question representa uma pergunta do questionário NR-01.
// Inverted indica que um valor bruto alto significa MENOR risco.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Inverted bool   `json:"is_inverted"`
}

// ThemeNames lista os temas na ordem dos blocos de perguntas
var ThemeNames = [ThemeCount]string{
	"Assédio e Violência",
	"Carga de Trabalho",
	"Reconhecimento e Carreira",
	"Clima Organizacional",
	"Autonomia e Controle",
	"Metas e Pressão",
	"Insegurança no Trabalho",
	"Comunicação e Conflitos",
	"Equilíbrio Vida Pessoal",
}

// Questions é a tabela estática e ordenada das 90 perguntas.
// O tema de cada pergunta é dado pela posição: índice/QuestionsPerTheme.
var Questions = []Question{
	// Tema 1 (1-10)
	{ID: 1, Text: "Você já presenciou ou sofreu comentários ofensivos, piadas ou insinuações inadequadas no ambiente de trabalho?", Inverted: false},
	{ID: 2, Text: "Você se sente à vontade para relatar situações de assédio moral ou sexual na empresa sem medo de represálias?", Inverted: true},
	{ID: 3, Text: "Existe um canal seguro e sigiloso para denunciar assédio na empresa?", Inverted: true},
	{ID: 4, Text: "Você já recebeu tratamento desrespeitoso ou humilhante de colegas ou superiores?", Inverted: false},
	{ID: 5, Text: "Você sente que há favoritismo ou perseguição por parte da liderança?", Inverted: false},
	{ID: 6, Text: "Há casos conhecidos de assédio moral ou sexual que não foram devidamente investigados ou punidos?", Inverted: false},
	{ID: 7, Text: "A empresa realiza treinamentos ou campanhas de conscientização sobre assédio?", Inverted: true},
	{ID: 8, Text: "O RH e os gestores demonstram comprometimento real com a prevenção do assédio?", Inverted: true},
	{ID: 9, Text: "Você já foi forçado(a) a realizar tarefas humilhantes ou degradantes?", Inverted: false},
	{ID: 10, Text: "Existe uma cultura de 'brincadeiras' que desrespeitam funcionários? Já foi vítima de alguma delas?", Inverted: false},

	// Tema 2 (11-20)
	{ID: 11, Text: "Você sente que sua carga de trabalho diária é superior à sua capacidade de execução dentro do horário normal?", Inverted: false},
	{ID: 12, Text: "Você frequentemente precisa fazer horas extras ou levar trabalho para casa?", Inverted: false},
	{ID: 13, Text: "As demandas e prazos estabelecidos são realistas e atingíveis?", Inverted: true},
	{ID: 14, Text: "Você sente que a empresa respeita seus limites físicos e mentais?", Inverted: true},
	{ID: 15, Text: "Você recebe pausas adequadas ao longo do dia?", Inverted: true},
	{ID: 16, Text: "Existe um equilíbrio entre tarefas administrativas e operacionais?", Inverted: true},
	{ID: 17, Text: "Há redistribuição de tarefas quando há sobrecarga em algum setor ou equipe?", Inverted: true},
	{ID: 18, Text: "Você já teve sintomas físicos ou emocionais (como ansiedade, exaustão, insônia) devido ao excesso de trabalho?", Inverted: false},
	{ID: 19, Text: "Existe flexibilidade para gerenciar sua própria carga de trabalho?", Inverted: true},
	{ID: 20, Text: "A equipe é dimensionada corretamente para a demanda da empresa?", Inverted: true},

	// Tema 3 (21-30)
	{ID: 21, Text: "Você sente que seu esforço e desempenho são reconhecidos pela liderança?", Inverted: true},
	{ID: 22, Text: "A empresa possui políticas claras de promoção e progressão de carreira?", Inverted: true},
	{ID: 23, Text: "As avaliações de desempenho são justas e transparentes?", Inverted: true},
	{ID: 24, Text: "Você sente que há igualdade no reconhecimento entre diferentes áreas ou equipes?", Inverted: true},
	{ID: 25, Text: "A empresa oferece incentivos financeiros ou não financeiros pelo bom desempenho?", Inverted: true},
	{ID: 26, Text: "Você recebe feedback construtivo regularmente?", Inverted: true},
	{ID: 27, Text: "Existe uma cultura de valorização dos funcionários?", Inverted: true},
	{ID: 28, Text: "Você já se sentiu desmotivado(a) por falta de reconhecimento?", Inverted: false},
	{ID: 29, Text: "A empresa celebra conquistas individuais e coletivas?", Inverted: true},
	{ID: 30, Text: "O plano de benefícios da empresa é condizente com suas necessidades e expectativas?", Inverted: true},

	// Tema 4 (31-40)
	{ID: 31, Text: "O ambiente de trabalho é amigável e colaborativo?", Inverted: true},
	{ID: 32, Text: "Existe um sentimento de confiança entre os colegas de trabalho?", Inverted: true},
	{ID: 33, Text: "Você se sente confortável para expressar suas opiniões na equipe?", Inverted: true},
	{ID: 34, Text: "Os gestores promovem um ambiente saudável e respeitoso?", Inverted: true},
	{ID: 35, Text: "Existe transparência na comunicação da empresa?", Inverted: true},
	{ID: 36, Text: "Você sente que pode contar com seus colegas em momentos de dificuldade?", Inverted: true},
	{ID: 37, Text: "Há um senso de propósito e pertencimento entre os funcionários?", Inverted: true},
	{ID: 38, Text: "Conflitos são resolvidos de forma justa e eficiente?", Inverted: true},
	{ID: 39, Text: "O ambiente físico do local de trabalho é confortável e seguro?", Inverted: true},
	{ID: 40, Text: "A cultura organizacional da empresa está alinhada com seus valores pessoais?", Inverted: true},

	// Tema 5 (41-50)
	{ID: 41, Text: "Você tem liberdade para tomar decisões sobre suas tarefas diárias?", Inverted: true},
	{ID: 42, Text: "Seu trabalho permite flexibilidade para adaptar sua rotina conforme necessário?", Inverted: true},
	{ID: 43, Text: "Você sente que tem voz ativa na empresa?", Inverted: true},
	{ID: 44, Text: "A empresa confia em sua capacidade de autogestão?", Inverted: true},
	{ID: 45, Text: "Você recebe instruções claras sobre suas responsabilidades?", Inverted: true},
	{ID: 46, Text: "O excesso de controle ou burocracia interfere no seu desempenho?", Inverted: false},
	{ID: 47, Text: "Suas sugestões são ouvidas e consideradas pela liderança?", Inverted: true},
	{ID: 48, Text: "Você tem acesso às ferramentas e recursos necessários para desempenhar bem seu trabalho?", Inverted: true},
	{ID: 49, Text: "Você sente que pode propor melhorias sem medo de represálias?", Inverted: true},
	{ID: 50, Text: "O excesso de supervisão impacta sua produtividade ou bem-estar?", Inverted: false},

	// Tema 6 (51-60)
	{ID: 51, Text: "As metas da empresa são realistas e atingíveis?", Inverted: true},
	{ID: 52, Text: "Você sente que há pressão excessiva para alcançar resultados?", Inverted: false},
	{ID: 53, Text: "A cobrança por metas impacta sua saúde mental ou emocional?", Inverted: false},
	{ID: 54, Text: "Existe apoio da liderança para lidar com desafios relacionados às metas?", Inverted: true},
	{ID: 55, Text: "Você sente que pode negociar prazos ou objetivos quando necessário?", Inverted: true},
	{ID: 56, Text: "A competitividade entre os funcionários é estimulada de maneira saudável?", Inverted: true},
	{ID: 57, Text: "Você já sentiu medo de punição por não atingir metas?", Inverted: false},
	{ID: 58, Text: "O sistema de avaliação de metas é transparente?", Inverted: true},
	{ID: 59, Text: "Você tem tempo suficiente para cumprir suas demandas com qualidade?", Inverted: true},
	{ID: 60, Text: "A pressão por resultados impacta negativamente o ambiente de trabalho?", Inverted: false},

	// Tema 7 (61-70)
	{ID: 61, Text: "Você já sentiu que seu emprego está ameaçado sem justificativa clara?", Inverted: false},
	{ID: 62, Text: "A empresa faz cortes ou demissões repentinas sem aviso prévio?", Inverted: false},
	{ID: 63, Text: "Há comunicação clara sobre a estabilidade da empresa e dos empregos?", Inverted: true},
	{ID: 64, Text: "Você já sofreu ameaças veladas ou diretas no ambiente de trabalho?", Inverted: false},
	{ID: 65, Text: "Você sente que há transparência nas políticas de desligamento?", Inverted: true},
	{ID: 66, Text: "Mudanças organizacionais impactaram seu sentimento de segurança no trabalho?", Inverted: false},
	{ID: 67, Text: "Você já presenciou casos de demissões injustas?", Inverted: false},
	{ID: 68, Text: "O medo da demissão afeta seu desempenho?", Inverted: false},
	{ID: 69, Text: "A empresa oferece suporte psicológico para funcionários inseguros?", Inverted: true},
	{ID: 70, Text: "Você já evitou expressar sua opinião por medo de represálias?", Inverted: false},

	// Tema 8 (71-80)
	{ID: 71, Text: "Conflitos internos são resolvidos de maneira justa?", Inverted: true},
	{ID: 72, Text: "A comunicação entre equipes e departamentos é eficiente?", Inverted: true},
	{ID: 73, Text: "Você já evitou colegas ou superiores devido a desentendimentos?", Inverted: false},
	{ID: 74, Text: "Existe um canal aberto para feedback entre colaboradores e liderança?", Inverted: true},
	{ID: 75, Text: "A falta de comunicação já comprometeu seu trabalho?", Inverted: false},
	{ID: 76, Text: "Você sente que há rivalidade desnecessária entre setores?", Inverted: false},
	{ID: 77, Text: "Há treinamentos sobre comunicação assertiva e gestão de conflitos?", Inverted: true},
	{ID: 78, Text: "Você sente que pode expressar suas dificuldades sem ser julgado?", Inverted: true},
	{ID: 79, Text: "A empresa promove um ambiente de diálogo aberto?", Inverted: true},
	{ID: 80, Text: "O RH está presente e atuante na mediação de conflitos?", Inverted: true},

	// Tema 9 (81-90)
	{ID: 81, Text: "Você sente que a sua jornada de trabalho permite equilíbrio com sua vida pessoal?", Inverted: true},
	{ID: 82, Text: "Você sente que tem tempo para sua família e lazer?", Inverted: true},
	{ID: 83, Text: "O trabalho impacta negativamente sua saúde mental?", Inverted: false},
	{ID: 84, Text: "Você tem flexibilidade para lidar com questões pessoais urgentes?", Inverted: true},
	{ID: 85, Text: "A empresa oferece suporte para equilíbrio entre trabalho e vida pessoal?", Inverted: true},
	{ID: 86, Text: "Você consegue se desconectar do trabalho fora do expediente?", Inverted: true},
	{ID: 87, Text: "Você sente que sua vida pessoal é respeitada pela empresa?", Inverted: true},
	{ID: 88, Text: "Há incentivo ao bem-estar e qualidade de vida no trabalho?", Inverted: true},
	{ID: 89, Text: "O estresse profissional afeta sua vida familiar?", Inverted: false},
	{ID: 90, Text: "O ambiente corporativo valoriza o descanso e recuperação dos funcionários?", Inverted: true},
}

// ThemeQuestions retorna o bloco de perguntas de um tema.
// Índices fora de [0, ThemeCount) retornam nil.
func ThemeQuestions(questions []Question, themeIdx int) []Question {
	if themeIdx < 0 || themeIdx >= ThemeCount {
		return nil
	}
	start := themeIdx * QuestionsPerTheme
	if start >= len(questions) {
		return nil
	}
	end := start + QuestionsPerTheme
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// ThemeOf retorna o índice do tema ao qual a pergunta pertence, ou -1
func ThemeOf(questionID int) int {
	if questionID < 1 || questionID > ThemeCount*QuestionsPerTheme {
		return -1
	}
	return (questionID - 1) / QuestionsPerTheme
}

// ValidTheme indica se o índice de tema está no intervalo fixo
func ValidTheme(themeIdx int) bool {
	return themeIdx >= 0 && themeIdx < ThemeCount
}
