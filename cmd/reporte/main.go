// reporte inicia sesión en el backend y guarda en disco el reporte de ventas del almacén,
// o el resumen PDF generado localmente con --pdf.
//
// Uso: go run ./cmd/reporte --email ana@tienda.cl --periodo mensual [--almacen 2] [--pdf] [--salida dir]
// La contraseña se lee de REPORTE_PASSWORD. BACKEND_URL y el resto de la configuración como en cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/negocify/internal/application/auth"
	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/usecase"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/ventas"
	"github.com/jhoicas/negocify/internal/infrastructure/backend"
	"github.com/jhoicas/negocify/internal/infrastructure/memoria"
	"github.com/jhoicas/negocify/internal/infrastructure/mindicador"
	infrapdf "github.com/jhoicas/negocify/internal/infrastructure/pdf"
	"github.com/jhoicas/negocify/pkg/config"
	"github.com/jhoicas/negocify/pkg/logger"
)

func main() {
	email := pflag.String("email", "", "email del usuario")
	almacen := pflag.String("almacen", "", "id del almacén; por defecto el primero del usuario")
	periodoFlag := pflag.String("periodo", "todo", "período o fecha YYYY-MM-DD")
	granularidad := pflag.String("granularidad", string(ventas.PorMes), "agrupación de la serie del PDF")
	conPDF := pflag.Bool("pdf", false, "generar el resumen PDF en lugar del reporte del backend")
	salida := pflag.String("salida", ".", "directorio de salida")
	pflag.Parse()

	password := os.Getenv("REPORTE_PASSWORD")
	if *email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Se requieren --email y REPORTE_PASSWORD")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout(), nil)
	sesiones := memoria.NewSesionStore(0)
	authUC := auth.NewAuthUseCase(api, sesiones, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	login, err := authUC.Login(ctx, dto.LoginRequest{Email: *email, Password: password})
	if err != nil {
		log.Fatal().Err(err).Msg("login")
	}
	sesion, err := authUC.Autenticar(ctx, login.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("sesión")
	}
	if *almacen != "" && entity.ID(*almacen) != sesion.AlmacenID {
		if _, err := authUC.SeleccionarAlmacen(ctx, sesion, entity.ID(*almacen)); err != nil {
			log.Fatal().Err(err).Str("almacen", *almacen).Msg("seleccionar almacén")
		}
		if sesion, err = authUC.Autenticar(ctx, login.Token); err != nil {
			log.Fatal().Err(err).Msg("sesión")
		}
	}
	defer func() { _ = authUC.Logout(context.Background(), sesion.ID) }()

	dolar := mindicador.NewCachedProvider(mindicador.NewClient(cfg.Dolar.URL, cfg.Backend.Timeout()), memoria.NewTasaCache(), cfg.Dolar.TTL(), nil)
	ventasUC := usecase.NewVentasUseCase(api, sesiones, dolar, nil, usecase.VentasConfig{IVA: &cfg.Ventas.IVA})
	reporteUC := usecase.NewReporteUseCase(api, sesiones, nil, ventasUC, infrapdf.NewMarotoResumenGenerator())

	p := periodo.ParsePeriodo(*periodoFlag)
	var archivo *entity.Archivo
	if *conPDF {
		g, _ := ventas.GranularidadDe(*granularidad)
		archivo, err = reporteUC.ResumenPDF(ctx, sesion, dto.ConsultaVentas{Periodo: p, Granularidad: g})
	} else {
		archivo, err = reporteUC.Descargar(ctx, sesion, p)
	}
	if err != nil {
		log.Fatal().Err(err).Str("periodo", p.String()).Msg("generar reporte")
	}

	destino := filepath.Join(*salida, filepath.Base(archivo.Nombre))
	if err := os.WriteFile(destino, archivo.Contenido, 0o644); err != nil {
		log.Fatal().Err(err).Str("destino", destino).Msg("escribir archivo")
	}
	log.Info().Str("destino", destino).Int("bytes", len(archivo.Contenido)).Msg("reporte guardado")
}
