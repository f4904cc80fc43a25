package ports

// KeyValueStore es la superficie clave-valor durable donde la sesión
// sobrevive a los reinicios (el análogo del localStorage del navegador).
// Las implementaciones deben tratar la ausencia de una clave como un miss
// normal (found=false), nunca como error.
type KeyValueStore interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
