package httperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a business error independently of the transport.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindInvalidState Kind = "invalid_state"
)

// BusinessError is a comparable value, so package level sentinels built with
// ErrBusiness can be matched with errors.Is.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

type entry struct {
	kind    Kind
	message string
}

var catalog = map[string]entry{
	// -------- not found --------
	"client_not_found":      {KindNotFound, "Cliente não encontrado."},
	"service_not_found":     {KindNotFound, "Serviço não encontrado."},
	"provider_not_found":    {KindNotFound, "Prestador não encontrado."},
	"appointment_not_found": {KindNotFound, "Agendamento não encontrado."},

	// -------- validation --------
	"malformed_time":             {KindValidation, "Horário em formato inválido. Use HH:MM."},
	"invalid_slot_duration":      {KindValidation, "A duração do slot deve estar entre 15 e 180 minutos."},
	"invalid_rule_window":        {KindValidation, "O horário de término deve ser posterior ao de início."},
	"incomplete_break":           {KindValidation, "Informe início e fim da pausa, ou nenhum dos dois."},
	"invalid_break":              {KindValidation, "A pausa deve terminar depois de começar e estar dentro do expediente."},
	"invalid_weekday":            {KindValidation, "Dia da semana inválido."},
	"self_booking":               {KindValidation, "O prestador não pode agendar o próprio serviço."},
	"closed_day":                 {KindValidation, "Não é possível agendar aos domingos."},
	"unavailable_day":            {KindValidation, "O serviço não está disponível neste dia."},
	"invalid_range":              {KindValidation, "O horário de início deve ser anterior ao de término."},
	"outside_working_hours":      {KindValidation, "Fora do horário de atendimento."},
	"start_in_break":             {KindValidation, "O horário de início está dentro da pausa."},
	"end_in_break":               {KindValidation, "O horário de término está dentro da pausa."},
	"spans_break":                {KindValidation, "O agendamento não pode atravessar a pausa."},
	"duration_too_short":         {KindValidation, "A duração é menor que o slot do serviço."},
	"misaligned_slot":            {KindValidation, "O horário de início não corresponde a um slot disponível."},
	"start_in_past":              {KindValidation, "Não é possível agendar no passado."},
	"invalid_description":        {KindValidation, "A descrição deve ter entre 20 e 1000 caracteres."},
	"invalid_payment_method":     {KindValidation, "Forma de pagamento inválida."},
	"invalid_status":             {KindValidation, "Status inválido."},
	"missing_reason":             {KindValidation, "Informe o motivo do cancelamento."},
	"missing_payment_reference":  {KindValidation, "Informe a referência do pagamento."},
	"invalid_request":            {KindValidation, "Dados inválidos."},
	"invalid_date":               {KindValidation, "Data inválida."},
	"invalid_year":               {KindValidation, "Ano inválido."},
	"invalid_month":              {KindValidation, "Mês inválido."},
	"reason_too_long":            {KindValidation, "O motivo deve ter no máximo 255 caracteres."},
	"payment_reference_too_long": {KindValidation, "A referência do pagamento deve ter no máximo 100 caracteres."},

	// -------- conflict --------
	"slot_conflict":            {KindConflict, "Conflito de horário."},
	"payment_reference_in_use": {KindConflict, "Esta referência de pagamento já foi usada em outro agendamento."},

	// -------- forbidden --------
	"forbidden":              {KindForbidden, "Você não tem permissão para esta operação."},
	"cash_requires_provider": {KindForbidden, "Pagamentos em dinheiro só podem ser confirmados pelo prestador."},

	// -------- invalid state --------
	"invalid_transition":        {KindInvalidState, "Transição de status não permitida."},
	"already_completed":         {KindInvalidState, "O agendamento já foi concluído."},
	"already_canceled":          {KindInvalidState, "O agendamento já foi cancelado."},
	"already_paid":              {KindInvalidState, "O pagamento já foi confirmado."},
	"payment_before_completion": {KindInvalidState, "O pagamento só pode ser confirmado após a conclusão."},
	"payment_not_approved":      {KindInvalidState, "O pagamento não foi aprovado."},
	"stale_appointment":         {KindInvalidState, "O agendamento foi alterado por outra operação."},
}

// ErrBusiness builds the error registered for code. Unknown codes are
// treated as validation errors and use the code as message.
func ErrBusiness(code string) error {
	e, ok := catalog[code]
	if !ok {
		return BusinessError{Kind: KindValidation, Code: code, Message: code}
	}
	return BusinessError{Kind: e.kind, Code: code, Message: e.message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// StatusFor maps a kind to its HTTP status.
func StatusFor(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict, KindInvalidState:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// --------------------------------------------------
// Postgres
// --------------------------------------------------

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// IsExclusionConflict reports whether err comes from the appointment
// overlap exclusion constraint.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}

// IsUniqueViolation reports whether err comes from a unique index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
