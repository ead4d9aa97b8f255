package response

// Business error registry. 4xxxx are request/business failures, 5xxxx are
// server-side failures (reported to Sentry).
var (
	ErrInvalidRequest = newError(40001, "Solicitud inválida")
	ErrTokenInvalid   = newError(40002, "Credencial de acceso inválida")
	ErrUnauthorized   = newError(40101, "Sesión no iniciada o expirada")
	ErrForbidden      = newError(40301, "No tienes permiso para esta operación")
	ErrNotFound       = newError(40401, "Recurso no encontrado")
	ErrAlreadyExists  = newError(40901, "El recurso ya existe")

	ErrInvalidPassword  = newError(40003, "Contraseña incorrecta")
	ErrCapacityExceeded = newError(40902, "Se alcanzó el máximo de participantes")
	ErrInvalidDate      = newError(40004, "Formato de fecha inválido, se espera YYYY-MM-DD")
	ErrConfirmToken     = newError(40005, "Enlace de confirmación inválido o expirado")

	ErrDatabase = newError(50001, "Error en la base de datos")
	ErrInternal = newError(50002, "Error interno del servidor")
	ErrMail     = newError(50003, "No se pudo enviar el correo")
)
