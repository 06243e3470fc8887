// Package server provides the listeners the HTTP server accepts connections on.
package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/chessacademy-server/internal/model"
)

// NewSecurityLayer returns a TLS listener when enableHTTPS is set, a plain one otherwise.
func NewSecurityLayer(enableHTTPS bool, certFileName, privateKeyFileName string) model.SecurityLayer {
	if enableHTTPS {
		return NewTLSListener(certFileName, privateKeyFileName)
	}
	return NewPlainListener()
}

// TLSListener serves HTTPS with a certificate loaded from disk.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen loads the key pair from disk on every call.
func (l *TLSListener) Listen(network, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1"},
	}
	return tls.Listen(network, addr, tlsConfig)
}

// PlainListener serves unencrypted HTTP, for deployments behind a TLS-terminating proxy.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(network, addr string) (net.Listener, error) {
	return net.Listen(network, addr)
}
