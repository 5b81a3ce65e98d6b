package advisor

import "github.com/etnz/finflow"

// Messages are the fixed texts shown in place of, or around, an advice.
type Messages struct {
	MissingKey  string // no credential configured, nothing was sent.
	Failure     string // the request failed.
	Empty       string // the service answered without text.
	Loading     string // a request is in flight.
	Busy        string // a request is already in flight.
	Placeholder string // no advice was requested yet.
}

var catalog = map[finflow.Lang]Messages{
	finflow.Spanish: {
		MissingKey:  "Configuración incompleta: Falta la API Key de Gemini. Por favor configúrala en las variables de entorno.",
		Failure:     "Hubo un error al conectar con el asistente financiero. Inténtalo más tarde.",
		Empty:       "No se pudo generar el consejo en este momento.",
		Loading:     "Analizando tus finanzas...",
		Busy:        "Ya hay un análisis en curso, espera a que termine.",
		Placeholder: "Pide un consejo para recibir un análisis de tus inversiones y gastos potenciado por IA.",
	},
	finflow.English: {
		MissingKey:  "Incomplete configuration: the Gemini API key is missing. Please set it in the environment variables.",
		Failure:     "There was an error connecting to the financial assistant. Please try again later.",
		Empty:       "The advice could not be generated right now.",
		Loading:     "Analyzing your finances...",
		Busy:        "An analysis is already in progress, wait for it to finish.",
		Placeholder: "Ask for advice to receive an AI-powered analysis of your investments and spending.",
	},
}

// MessagesFor returns the messages in lang, falling back to the default language.
func MessagesFor(lang finflow.Lang) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[finflow.DefaultLang]
}
