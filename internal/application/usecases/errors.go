package usecases

import "errors"

var (
	ErrCompanyNotFound    = errors.New("empresa não encontrada")
	ErrSectorNotFound     = errors.New("setor não encontrado para esta empresa")
	ErrInvalidTheme       = errors.New("tema inválido: use um índice de 0 a 8")
	ErrInvalidProbability = errors.New("probabilidade inválida: use um valor de 1 a 4")
	ErrReportNotFound     = errors.New("nenhum laudo salvo para este setor")
	ErrInvalidAnswers     = errors.New("respostas inválidas: questões de 1 a 90 e valores de 0 a 4")
	ErrCompanyClosed      = errors.New("empresa não está recebendo respostas")
	ErrInvalidStatus      = errors.New("status inválido: use Aberto ou Fechado")
)
