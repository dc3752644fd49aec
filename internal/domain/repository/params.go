package repository

// Activity discriminador que selecciona la rama del procedimiento almacenado.
type Activity string

const (
	ActivityGetAll         Activity = "GET_ALL"
	ActivityGetByID        Activity = "GET_BY_ID"
	ActivityGetDetailsByID Activity = "GET_DETAILS_BY_ID"
	ActivityGetByEmail     Activity = "GET_BY_EMAIL"
	ActivityInsert         Activity = "INSERT"
	ActivityUpdate         Activity = "UPDATE"
	ActivityDelete         Activity = "DELETE"
	ActivityChangeStatus   Activity = "CHANGE_STATUS"
	ActivityCheckDuplicate Activity = "CHECK_DUPLICATE"
)

// Claves reservadas de la bolsa de parámetros.
const (
	KeyActivity  = "activity"
	KeySearch    = "search"
	KeyPageIndex = "page_index"
	KeyPageSize  = "page_size"
)

// Params bolsa de parámetros clave-valor de una llamada. Las claves son identificadores SQL
// (se convierten en argumentos con nombre del procedimiento).
type Params map[string]any

// NewParams crea la bolsa con la actividad ya fijada.
func NewParams(activity Activity) Params {
	return Params{KeyActivity: string(activity)}
}

// With agrega un parámetro y devuelve la misma bolsa para encadenar.
func (p Params) With(key string, value any) Params {
	p[key] = value
	return p
}

// Merge copia todas las claves de other (sin tocar la actividad ya fijada).
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		if k == KeyActivity {
			continue
		}
		p[k] = v
	}
	return p
}

// Activity devuelve la actividad de la bolsa (vacío si no se fijó).
func (p Params) Activity() Activity {
	s, _ := p[KeyActivity].(string)
	return Activity(s)
}
