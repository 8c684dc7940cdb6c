package matching

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func requestedMessage(guest, product, place string) string {
	return fmt.Sprintf("%s has requested to store %s at %s.", guest, product, place)
}

func acceptedMessage(host, product string) string {
	return fmt.Sprintf("%s has accepted your request to store %s. Please confirm the storage.", host, product)
}

func confirmedMessage(guest, product string, expiry time.Time) string {
	return fmt.Sprintf("%s has confirmed storage of %s until %s.", guest, product, expiry.Format(dateLayout))
}

func halfCompletedMessage(name string) string {
	return fmt.Sprintf("%s has marked storage complete, please confirm.", name)
}

func completedMessage(product string) string {
	return fmt.Sprintf("Storage of %s is complete.", product)
}

func cancelledMessage(name, product string) string {
	return fmt.Sprintf("%s has cancelled the storage of %s. The request is open again.", name, product)
}

func withdrawnMessage(guest, product string) string {
	return fmt.Sprintf("%s has withdrawn the request to store %s.", guest, product)
}
