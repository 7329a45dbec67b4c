package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/csvimport"
	httpRouter "github.com/jhoicas/Clientes-api/internal/interfaces/http"
)

var (
	importArchivo   string
	importCharset   string
	importSeparador string
	importJSON      bool
)

var importarCmd = &cobra.Command{
	Use:   "importar",
	Short: "Importa clientes desde un archivo CSV",
	Long: `Da de alta cada fila del CSV con las mismas reglas que la API:
unicidad de documento y correo, fecha no futura y viabilidad por edad.
La primera línea debe ser el encabezado con las columnas numero_documento,
nombre, apellidos, fecha_nacimiento (AAAA-MM-DD), ciudad, correo_electronico,
telefono y ocupacion. Una fila con error no detiene las demás.`,
	Args: cobra.NoArgs,
	RunE: runImportar,
}

func init() {
	importarCmd.Flags().StringVarP(&importArchivo, "archivo", "f", "", "ruta del archivo CSV")
	importarCmd.Flags().StringVar(&importCharset, "charset", csvimport.CharsetUTF8, "codificación: utf-8, iso-8859-1 o windows-1252")
	importarCmd.Flags().StringVar(&importSeparador, "separador", ",", "separador de columnas")
	importarCmd.Flags().BoolVar(&importJSON, "json", false, "reporte en JSON")
	_ = importarCmd.MarkFlagRequired("archivo")
	rootCmd.AddCommand(importarCmd)
}

func runImportar(cmd *cobra.Command, _ []string) error {
	sep, size := utf8.DecodeRuneInString(importSeparador)
	if size == 0 || size != len(importSeparador) {
		return fmt.Errorf("separador inválido %q: debe ser un solo carácter", importSeparador)
	}

	f, err := os.Open(importArchivo)
	if err != nil {
		return fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	filas, err := csvimport.Leer(f, csvimport.Opciones{Charset: importCharset, Separador: sep})
	if err != nil {
		return fmt.Errorf("leer CSV: %w", err)
	}

	ctx := cmd.Context()
	_, backend, log, err := conectar(ctx)
	if err != nil {
		return err
	}
	defer backend.Close()

	uc := clientes.NewClienteUseCase(backend.Repo, backend.Tx, log)
	val := httpRouter.NewValidator(nil)
	rep, err := csvimport.NewImporter(uc, val.Struct).Importar(ctx, filas)
	if err != nil {
		return fmt.Errorf("importar: %w", err)
	}

	if importJSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("serializar reporte: %w", err)
		}
		cmd.Println(string(data))
	} else {
		for _, r := range rep.Resultados {
			if r.Creado {
				cmd.Printf("línea %d: %s creado (viable: %t)\n", r.Linea, r.NumeroDocumento, r.EsViable)
				continue
			}
			cmd.Printf("línea %d: %s %s: %s\n", r.Linea, r.NumeroDocumento, r.Tipo, r.Error)
		}
		cmd.Printf("Creados: %d (viables: %d), fallidos: %d\n", rep.Creados, rep.Viables, rep.Fallidos)
	}
	if rep.Fallidos > 0 {
		return errFilasConError
	}
	return nil
}

var errFilasConError = errors.New("hubo filas con error")
